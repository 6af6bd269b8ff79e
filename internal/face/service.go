package face

import (
	"sync"

	"gocv.io/x/gocv"
)

// FaceService runs the full comparison pipeline: decode, detect, align,
// embed, score, decide. The underlying OpenCV handles are not documented
// as safe for concurrent invocation, so a mutex serializes model calls
// while gin handles requests concurrently.
type FaceService struct {
	Detector   *Detector
	Recognizer *Recognizer

	mu sync.Mutex
}

func (s *FaceService) Available() bool {
	return s.Detector != nil && s.Recognizer != nil
}

// Compare decides whether imageA and imageB show the same face. It
// returns the boolean decision plus both raw distance scores, or one of
// the package's sentinel errors.
func (s *FaceService) Compare(imageA, imageB []byte) (*MatchResult, error) {
	if !s.Available() {
		return nil, ErrModelUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	featureA, err := s.embed(imageA)
	if err != nil {
		return nil, err
	}
	defer featureA.Close()

	featureB, err := s.embed(imageB)
	if err != nil {
		return nil, err
	}
	defer featureB.Close()

	score := s.Recognizer.Match(featureA, featureB)
	return &MatchResult{Match: decide(score), Confidence: score}, nil
}

// embed runs one image through decode, detection and feature extraction,
// consuming only the detector's top-ranked face.
func (s *FaceService) embed(buf []byte) (gocv.Mat, error) {
	img, err := decodeBounded(buf, MaxImageSide)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer img.Close()

	faces := gocv.NewMat()
	defer faces.Close()
	s.Detector.Detect(img, &faces)

	if faces.Empty() || faces.Rows() == 0 {
		return gocv.Mat{}, ErrNoFaceFound
	}

	topFace := faces.RowRange(0, 1)
	defer topFace.Close()

	return s.Recognizer.Feature(img, topFace)
}

func (s *FaceService) Close() {
	if s.Detector != nil {
		s.Detector.Close()
	}
	if s.Recognizer != nil {
		s.Recognizer.Close()
	}
}
