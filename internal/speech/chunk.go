package speech

import "fmt"

// PayloadKind tags the native representation an audio chunk arrived in.
// Pipelines emit whatever their binding hands them; normalization to
// float32 happens in exactly one place, here, and unrecognized kinds
// fail fast instead of being silently coerced.
type PayloadKind int

const (
	PayloadFloat32 PayloadKind = iota
	PayloadFloat64
	PayloadInt16
)

// ChunkPayload is a tagged union over the sample representations the
// model bindings produce.
type ChunkPayload struct {
	Kind PayloadKind
	F32  []float32
	F64  []float64
	I16  []int16
}

// Samples normalizes the payload to the canonical float32 form.
func (p ChunkPayload) Samples() ([]float32, error) {
	switch p.Kind {
	case PayloadFloat32:
		return p.F32, nil
	case PayloadFloat64:
		out := make([]float32, len(p.F64))
		for i, v := range p.F64 {
			out[i] = float32(v)
		}
		return out, nil
	case PayloadInt16:
		out := make([]float32, len(p.I16))
		for i, v := range p.I16 {
			out[i] = float32(v) / 32768.0
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unrecognized chunk payload kind %d", p.Kind)
	}
}

// Chunk is one element of a synthesis stream: the text segment it was
// generated from plus its audio payload. Chunks arrive in generation
// order and are never reordered.
type Chunk struct {
	Index   int
	Text    string
	Payload ChunkPayload
}

// ChunkStream is a lazy, ordered, finite sequence of chunks. Next
// returns (nil, nil) once the stream is exhausted; any error aborts
// consumption and discards everything collected so far.
type ChunkStream interface {
	Next() (*Chunk, error)
}
