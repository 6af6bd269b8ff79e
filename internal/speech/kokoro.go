package speech

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	sherpa "github.com/k2-fsa/sherpa-onnx-go/sherpa_onnx"
)

// Named voices shipped with the Kokoro package, mapped to the speaker
// ids sherpa-onnx addresses them by. Unknown names are not validated
// here: numeric strings go straight through as ids, anything else is
// handed to the pipeline as-is and fails however the pipeline fails.
var kokoroVoices = map[string]int{
	"af_heart":   0,
	"af_alloy":   1,
	"af_bella":   2,
	"af_nicole":  3,
	"af_sarah":   4,
	"am_adam":    5,
	"am_michael": 6,
	"bf_emma":    7,
	"bm_george":  8,
}

// KokoroConfig locates the Kokoro model package on disk.
type KokoroConfig struct {
	ModelPath  string
	VoicesPath string
	TokensPath string
	DataDir    string
	NumThreads int
}

// KokoroPipeline drives the pretrained Kokoro TTS model through
// sherpa-onnx. Generation for one segment is a long, blocking call into
// the model runtime; the mutex serializes concurrent requests since the
// runtime is not confirmed thread-safe.
type KokoroPipeline struct {
	tts *sherpa.OfflineTts
	mu  sync.Mutex
}

func NewKokoroPipeline(cfg KokoroConfig) (*KokoroPipeline, error) {
	for _, p := range []string{cfg.ModelPath, cfg.VoicesPath, cfg.TokensPath} {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("TTS model file not found: %s", p)
		}
	}

	numThreads := cfg.NumThreads
	if numThreads <= 0 {
		numThreads = 2
	}

	sherpaConfig := sherpa.OfflineTtsConfig{
		Model: sherpa.OfflineTtsModelConfig{
			Kokoro: sherpa.OfflineTtsKokoroModelConfig{
				Model:   cfg.ModelPath,
				Voices:  cfg.VoicesPath,
				Tokens:  cfg.TokensPath,
				DataDir: cfg.DataDir,
			},
			NumThreads: numThreads,
			Provider:   "cpu",
		},
		MaxNumSentences: 1,
	}

	tts := sherpa.NewOfflineTts(&sherpaConfig)
	if tts == nil {
		return nil, fmt.Errorf("failed to create sherpa-onnx TTS pipeline")
	}

	return &KokoroPipeline{tts: tts}, nil
}

// Generate returns a lazy stream producing one chunk per sentence
// segment of text. Nothing is synthesized until the stream is consumed.
func (p *KokoroPipeline) Generate(text, voice string) (ChunkStream, error) {
	sid, ok := kokoroVoices[voice]
	if !ok {
		// Pass-through: numeric ids are accepted verbatim, anything else
		// becomes an id the model rejects on first use.
		parsed, err := strconv.Atoi(voice)
		if err != nil {
			parsed = -1
		}
		sid = parsed
	}

	return &kokoroStream{
		pipeline: p,
		segments: splitSegments(text),
		sid:      sid,
		voice:    voice,
	}, nil
}

func (p *KokoroPipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tts != nil {
		sherpa.DeleteOfflineTts(p.tts)
		p.tts = nil
	}
}

type kokoroStream struct {
	pipeline *KokoroPipeline
	segments []string
	sid      int
	voice    string
	next     int
}

func (s *kokoroStream) Next() (*Chunk, error) {
	if s.next >= len(s.segments) {
		return nil, nil
	}

	segment := s.segments[s.next]
	index := s.next
	s.next++

	s.pipeline.mu.Lock()
	defer s.pipeline.mu.Unlock()

	if s.pipeline.tts == nil {
		return nil, fmt.Errorf("TTS pipeline is closed")
	}

	audio := s.pipeline.tts.Generate(segment, s.sid, 1.0)
	if audio == nil || len(audio.Samples) == 0 {
		return nil, fmt.Errorf("pipeline produced no audio for voice %q, segment %d", s.voice, index)
	}

	return &Chunk{
		Index:   index,
		Text:    segment,
		Payload: ChunkPayload{Kind: PayloadFloat32, F32: audio.Samples},
	}, nil
}
