// Package models tracks the lifecycle of the external model pipelines:
// which of them loaded at startup, and where their assets live on disk.
package models

// ModelState records the outcome of a model's one-time construction.
// States are set once during startup wiring and never change afterwards;
// there is no retry, reload or background health check.
type ModelState string

const (
	Loaded       ModelState = "loaded"
	FailedToLoad ModelState = "failed_to_load"
)

// Availability holds one state per external model. It is written by
// cmd/server during startup and read-only for the rest of the process
// lifetime, so request handlers may share it without locking.
type Availability struct {
	FaceDetector   ModelState
	FaceRecognizer ModelState
	TTS            ModelState
}

func (a *Availability) FaceDetectorAvailable() bool {
	return a.FaceDetector == Loaded
}

func (a *Availability) FaceRecognizerAvailable() bool {
	return a.FaceRecognizer == Loaded
}

func (a *Availability) TTSAvailable() bool {
	return a.TTS == Loaded
}
