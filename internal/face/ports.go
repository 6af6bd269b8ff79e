package face

import "facevoice-api/internal/history"

type ComparePort interface {
	Compare(imageA, imageB []byte) (*MatchResult, error)
}

type HistoryPort interface {
	Record(entry history.ServiceRequest, payload any) error
}

var _ ComparePort = (*FaceService)(nil)
