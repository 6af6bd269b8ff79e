package speech

import (
	"facevoice-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, synth SynthPort, historyService HistoryPort) {
	speechController := &SpeechController{Synth: synth, History: historyService}

	speechGroup := r.Group("/api")
	speechGroup.Use(middlewares.OptionalAuth())
	{
		speechGroup.POST("/voice-clone", speechController.VoiceClone)
		// Alias for better API naming.
		speechGroup.POST("/tts", speechController.VoiceClone)
	}
}
