package face

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// Detector wraps OpenCV's YuNet face detector. Constructed once at
// startup; failure to construct leaves the service in a degraded state
// rather than aborting the process.
type Detector struct {
	yn gocv.FaceDetectorYN
}

func NewDetector(modelPath string) (*Detector, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("face detection model not found: %s", modelPath)
	}

	yn := gocv.NewFaceDetectorYNWithParams(
		modelPath, "",
		image.Pt(DetectorInputSize, DetectorInputSize),
		ScoreThreshold, NMSThreshold, TopKCandidates,
		int(gocv.NetBackendDefault), int(gocv.NetTargetCPU),
	)
	return &Detector{yn: yn}, nil
}

// Detect runs the detector over img and fills faces with one row per
// detected face, ordered by the detector's own confidence ranking.
func (d *Detector) Detect(img gocv.Mat, faces *gocv.Mat) {
	d.yn.SetInputSize(image.Pt(img.Cols(), img.Rows()))
	d.yn.Detect(img, faces)
}

func (d *Detector) Close() error {
	d.yn.Close()
	return nil
}

// Recognizer wraps OpenCV's SFace model: alignment, embedding extraction
// and the model's own distance routines. Those routines are the only
// semantically valid distances for this embedding space.
type Recognizer struct {
	sf gocv.FaceRecognizerSF
}

func NewRecognizer(modelPath string) (*Recognizer, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("face recognition model not found: %s", modelPath)
	}

	sf := gocv.NewFaceRecognizerSF(modelPath, "")
	return &Recognizer{sf: sf}, nil
}

// Feature aligns and crops the given face region of img and extracts its
// embedding. The returned Mat is a clone owned by the caller.
func (r *Recognizer) Feature(img gocv.Mat, faceBox gocv.Mat) (gocv.Mat, error) {
	aligned := gocv.NewMat()
	defer aligned.Close()
	r.sf.AlignCrop(img, faceBox, &aligned)

	feature := gocv.NewMat()
	defer feature.Close()
	r.sf.Feature(aligned, &feature)

	if feature.Empty() {
		return gocv.Mat{}, ErrFeatureExtractionFailed
	}
	// Feature writes into a buffer the recognizer reuses on the next call.
	return feature.Clone(), nil
}

// Match computes both distance metrics between two embeddings.
func (r *Recognizer) Match(f1, f2 gocv.Mat) MatchScore {
	return MatchScore{
		L2Score:     float64(r.sf.MatchWithParams(f1, f2, gocv.FaceRecognizerSFDisTypeNormL2)),
		CosineScore: float64(r.sf.MatchWithParams(f1, f2, gocv.FaceRecognizerSFDisTypeCosine)),
	}
}

func (r *Recognizer) Close() error {
	r.sf.Close()
	return nil
}
