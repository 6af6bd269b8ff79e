package face

import "errors"

// Request-scoped failure classes for the comparison pipeline. Controllers
// map these onto HTTP statuses; none of them are fatal to the process.
var (
	ErrModelUnavailable        = errors.New("face models are not loaded")
	ErrDecodeFailure           = errors.New("could not decode image")
	ErrNoFaceFound             = errors.New("no faces found in one or both images")
	ErrFeatureExtractionFailed = errors.New("could not extract features from faces")
)
