package health

import (
	"net/http"

	"facevoice-api/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Availability *models.Availability
}

// GET /api/health
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                     "ok",
		"tts_available":              hc.Availability.TTSAvailable(),
		"face_detection_available":   hc.Availability.FaceDetectorAvailable(),
		"face_recognition_available": hc.Availability.FaceRecognizerAvailable(),
	})
}
