package speech

import "facevoice-api/internal/history"

type SynthPort interface {
	Available() bool
	SynthesizeToFile(text, voice, path string) error
}

type HistoryPort interface {
	Record(entry history.ServiceRequest, payload any) error
}

var _ SynthPort = (*Synthesizer)(nil)
var _ Pipeline = (*KokoroPipeline)(nil)
