package speech

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// SampleRate is fixed for output compatibility: every artifact this
	// service produces is a 24000 Hz WAV.
	SampleRate   = 24000
	DefaultVoice = "af_heart"
)

// Pipeline is the model-facing contract: a producer of lazy, ordered,
// finite chunk streams. The Kokoro binding implements it; tests swap in
// fakes.
type Pipeline interface {
	Generate(text, voice string) (ChunkStream, error)
}

// Synthesizer aggregates a pipeline's chunk stream into one audio buffer
// and persists it as a WAV artifact.
type Synthesizer struct {
	pipeline  Pipeline
	available bool
}

func NewSynthesizer(pipeline Pipeline) *Synthesizer {
	return &Synthesizer{pipeline: pipeline, available: pipeline != nil}
}

func (s *Synthesizer) Available() bool {
	return s.available
}

// Verify runs a short fixed phrase through the complete synthesis path,
// including WAV persistence, and flips the synthesizer to unavailable if
// anything fails or the output is empty. This catches pipelines that
// construct successfully but fail on first real use.
func (s *Synthesizer) Verify() bool {
	if !s.available {
		return false
	}

	testPath := filepath.Join(os.TempDir(), "tts-verify-"+uuid.NewString()+".wav")
	defer os.Remove(testPath)

	if err := s.SynthesizeToFile("Testing speech model initialization.", DefaultVoice, testPath); err != nil {
		log.Printf("TTS model verification failed: %v", err)
		s.available = false
		return false
	}

	sampleRate, sampleCount, err := readWAVInfo(testPath)
	if err != nil || sampleRate != SampleRate || sampleCount == 0 {
		log.Printf("TTS verification produced an unusable artifact (rate=%d samples=%d err=%v)", sampleRate, sampleCount, err)
		s.available = false
		return false
	}

	log.Printf("TTS model verified: %d samples at %d Hz", sampleCount, sampleRate)
	return true
}

// Synthesize converts text to one contiguous sample buffer. The chunk
// stream is folded left in generation order; a stream that yields zero
// chunks is an ErrEmptySynthesis even though the model is nominally
// available, and any mid-stream failure discards the partial buffer.
func (s *Synthesizer) Synthesize(text, voice string) ([]float32, error) {
	if !s.available {
		return nil, ErrModelUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if voice == "" {
		voice = DefaultVoice
	}

	stream, err := s.pipeline.Generate(strings.TrimSpace(text), voice)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	var buffer []float32
	chunks := 0
	for {
		chunk, err := stream.Next()
		if err != nil {
			return nil, &GenerationError{Cause: err}
		}
		if chunk == nil {
			break
		}

		samples, err := chunk.Payload.Samples()
		if err != nil {
			return nil, &GenerationError{Cause: err}
		}
		buffer = append(buffer, samples...)
		chunks++
	}

	if chunks == 0 {
		return nil, ErrEmptySynthesis
	}

	log.Printf("Synthesized %d chunks, %d samples", chunks, len(buffer))
	return buffer, nil
}

// SynthesizeToFile persists the synthesized buffer as a WAV artifact at
// the caller-supplied path. The caller owns the path and is responsible
// for deleting it on every outcome.
func (s *Synthesizer) SynthesizeToFile(text, voice, path string) error {
	buffer, err := s.Synthesize(text, voice)
	if err != nil {
		return err
	}
	return writeWAV(path, buffer, SampleRate)
}
