package health

import (
	"facevoice-api/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, availability *models.Availability) {
	healthController := &HealthController{Availability: availability}

	r.GET("/api/health", healthController.Health)
}
