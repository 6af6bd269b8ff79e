package speech

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"facevoice-api/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpeechController struct {
	Synth   SynthPort
	History HistoryPort
}

// POST /api/voice-clone (and its alias POST /api/tts)
func (sc *SpeechController) VoiceClone(c *gin.Context) {
	if !sc.Synth.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "TTS model not available. Please try again in a few moments or contact support if the issue persists.",
			"details": "The text-to-speech model failed to initialize. This could be due to missing model files or insufficient system resources.",
		})
		return
	}

	text := c.PostForm("text")
	voice := c.DefaultPostForm("voice", DefaultVoice)

	// Ephemeral artifact: written by the synthesizer, read back below,
	// removed on every branch from here on.
	outputPath := filepath.Join(os.TempDir(), "tts-"+uuid.NewString()+".wav")
	defer os.Remove(outputPath)

	if err := sc.Synth.SynthesizeToFile(text, voice, outputPath); err != nil {
		sc.record(c, voice, fmt.Sprintf("synthesis failed: %v", err))
		status, body := responseForSynthesisError(err)
		c.JSON(status, body)
		return
	}

	audioData, err := os.ReadFile(outputPath)
	if err != nil {
		sc.record(c, voice, fmt.Sprintf("artifact read failed: %v", err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process text-to-speech request",
			"details": err.Error(),
		})
		return
	}

	sc.record(c, voice, fmt.Sprintf("generated %d bytes of audio", len(audioData)))
	c.JSON(http.StatusOK, gin.H{
		"audio":   base64.StdEncoding.EncodeToString(audioData),
		"success": true,
	})
}

func responseForSynthesisError(err error) (int, gin.H) {
	var genErr *GenerationError
	switch {
	case errors.Is(err, ErrEmptyInput):
		return http.StatusBadRequest, gin.H{"error": "No text provided"}
	case errors.Is(err, ErrEmptySynthesis):
		return http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate speech",
			"details": err.Error(),
		}
	case errors.As(err, &genErr):
		return http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate speech",
			"details": genErr.Cause.Error(),
		}
	default:
		return http.StatusInternalServerError, gin.H{
			"error":   "Failed to process text-to-speech request",
			"details": err.Error(),
		}
	}
}

func (sc *SpeechController) record(c *gin.Context, voice, result string) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return
	}
	f, ok := userIDVal.(float64)
	if !ok {
		return
	}
	uid := uint(f)

	entry := history.ServiceRequest{
		UserID:  &uid,
		Service: history.ServiceVoiceClone,
		Result:  result,
	}
	if err := sc.History.Record(entry, gin.H{"voice": voice}); err != nil {
		fmt.Printf("Failed to insert history record: %v\n", err)
	}
}
