package face

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"facevoice-api/internal/history"

	"github.com/gin-gonic/gin"
)

type FaceController struct {
	Face    ComparePort
	History HistoryPort
}

// POST /api/face-detection
func (fc *FaceController) CompareFaces(c *gin.Context) {
	imageA, okA := readUpload(c, "image1")
	imageB, okB := readUpload(c, "image2")
	if !okA || !okB {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both image1 and image2 are required"})
		return
	}

	result, err := fc.Face.Compare(imageA, imageB)
	if err != nil {
		fc.record(c, fmt.Sprintf("comparison failed: %v", err), nil)
		c.JSON(statusForCompareError(err), gin.H{"error": err.Error()})
		return
	}

	fc.record(c, fmt.Sprintf("match=%t", result.Match), result)
	c.JSON(http.StatusOK, result)
}

func statusForCompareError(err error) int {
	switch {
	case errors.Is(err, ErrDecodeFailure),
		errors.Is(err, ErrNoFaceFound),
		errors.Is(err, ErrFeatureExtractionFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func readUpload(c *gin.Context, field string) ([]byte, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return buf, true
}

// record writes an audit entry for authenticated callers. Failures are
// printed and swallowed; they never change the primary response.
func (fc *FaceController) record(c *gin.Context, result string, payload any) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return
	}
	f, ok := userIDVal.(float64)
	if !ok {
		return
	}
	uid := uint(f)

	entry := history.ServiceRequest{
		UserID:  &uid,
		Service: history.ServiceFaceDetection,
		Result:  result,
	}
	if err := fc.History.Record(entry, payload); err != nil {
		fmt.Printf("Failed to insert history record: %v\n", err)
	}
}
