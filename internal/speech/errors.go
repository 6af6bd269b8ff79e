package speech

import (
	"errors"
	"fmt"
)

var (
	ErrModelUnavailable = errors.New("TTS model is not available")
	ErrEmptyInput       = errors.New("no text provided")
	ErrEmptySynthesis   = errors.New("TTS generation produced no audio chunks")
)

// GenerationError wraps any pipeline-internal failure, including failures
// after partial chunk collection. Partial output is discarded, and the
// underlying message feeds the HTTP `details` field.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate speech: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
