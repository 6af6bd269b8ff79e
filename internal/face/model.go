package face

// Detector geometry and decision thresholds for the YuNet + SFace
// pipeline. The threshold pair is the published SFace operating point;
// both conditions must hold for a match (AND gate, not an average).
const (
	DetectorInputSize  = 320
	ScoreThreshold     = 0.8
	NMSThreshold       = 0.3
	TopKCandidates     = 5000
	MaxImageSide       = 1500
	L2MatchThreshold   = 1.128
	CosineMatchMinimum = 0.363
)

// MatchScore carries both distance metrics between two face embeddings.
type MatchScore struct {
	L2Score     float64 `json:"l2_score"`
	CosineScore float64 `json:"cosine_score"`
}

// MatchResult is the outcome of comparing two images: the boolean
// decision plus the raw scores callers display as confidence.
type MatchResult struct {
	Match      bool       `json:"match"`
	Confidence MatchScore `json:"confidence"`
}

// decide applies the AND-gate threshold rule to a score pair.
func decide(score MatchScore) bool {
	return score.L2Score <= L2MatchThreshold && score.CosineScore >= CosineMatchMinimum
}

// boundedScale returns the shrink factor that brings the longest image
// side down to maxSide. ok is false when the image is already within
// bounds and must pass through untouched.
func boundedScale(width, height, maxSide int) (scale float64, ok bool) {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxSide || longest == 0 {
		return 1, false
	}
	return float64(maxSide) / float64(longest), true
}
