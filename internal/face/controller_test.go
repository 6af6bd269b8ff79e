package face

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"facevoice-api/internal/history"

	"github.com/gin-gonic/gin"
)

type mockCompare struct {
	CompareFn func(imageA, imageB []byte) (*MatchResult, error)
}

func (m *mockCompare) Compare(imageA, imageB []byte) (*MatchResult, error) {
	return m.CompareFn(imageA, imageB)
}

type mockHistory struct {
	entries []history.ServiceRequest
	err     error
}

func (m *mockHistory) Record(entry history.ServiceRequest, payload any) error {
	m.entries = append(m.entries, entry)
	return m.err
}

func setupFaceRouter(fc *FaceController, userID float64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
	}
	r.POST("/compare", fc.CompareFaces)
	return r
}

func postImages(t *testing.T, r http.Handler, fields map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, data := range fields {
		fw, err := mw.CreateFormFile(name, name+".jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/compare", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestCompareFaces_BadRequest_MissingImage(t *testing.T) {
	fc := &FaceController{
		Face:    &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) { t.Fatal("Compare called"); return nil, nil }},
		History: &mockHistory{},
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Both image1 and image2 are required") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCompareFaces_OK_Match(t *testing.T) {
	fc := &FaceController{
		Face: &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) {
			return &MatchResult{
				Match:      true,
				Confidence: MatchScore{L2Score: 0.8, CosineScore: 0.6},
			}, nil
		}},
		History: &mockHistory{},
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a"), "image2": []byte("b")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"match":true`, `"l2_score":0.8`, `"cosine_score":0.6`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body: %s", want, body)
		}
	}
}

func TestCompareFaces_BadRequest_NoFace(t *testing.T) {
	fc := &FaceController{
		Face:    &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) { return nil, ErrNoFaceFound }},
		History: &mockHistory{},
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a"), "image2": []byte("b")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompareFaces_BadRequest_DecodeFailure(t *testing.T) {
	fc := &FaceController{
		Face:    &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) { return nil, ErrDecodeFailure }},
		History: &mockHistory{},
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("x"), "image2": []byte("y")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompareFaces_ServerError_ModelUnavailable(t *testing.T) {
	fc := &FaceController{
		Face:    &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) { return nil, ErrModelUnavailable }},
		History: &mockHistory{},
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("x"), "image2": []byte("y")})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompareFaces_RecordsHistory_ForAuthenticatedUser(t *testing.T) {
	hist := &mockHistory{}
	fc := &FaceController{
		Face: &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) {
			return &MatchResult{Match: false, Confidence: MatchScore{L2Score: 1.5, CosineScore: 0.1}}, nil
		}},
		History: hist,
	}
	r := setupFaceRouter(fc, 42)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a"), "image2": []byte("b")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(hist.entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(hist.entries))
	}
	e := hist.entries[0]
	if e.UserID == nil || *e.UserID != 42 {
		t.Fatalf("unexpected user id: %v", e.UserID)
	}
	if e.Service != history.ServiceFaceDetection {
		t.Fatalf("unexpected service: %s", e.Service)
	}
}

func TestCompareFaces_SkipsHistory_ForAnonymousUser(t *testing.T) {
	hist := &mockHistory{}
	fc := &FaceController{
		Face: &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) {
			return &MatchResult{Match: true}, nil
		}},
		History: hist,
	}
	r := setupFaceRouter(fc, 0)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a"), "image2": []byte("b")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(hist.entries) != 0 {
		t.Fatalf("expected no history entries, got %d", len(hist.entries))
	}
}

func TestCompareFaces_HistoryFailureDoesNotChangeResponse(t *testing.T) {
	hist := &mockHistory{err: assertErr("db down")}
	fc := &FaceController{
		Face: &mockCompare{CompareFn: func(a, b []byte) (*MatchResult, error) {
			return &MatchResult{Match: true}, nil
		}},
		History: hist,
	}
	r := setupFaceRouter(fc, 7)

	w := postImages(t, r, map[string][]byte{"image1": []byte("a"), "image2": []byte("b")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
