package face

import (
	"facevoice-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, faceService ComparePort, historyService HistoryPort) {
	faceController := &FaceController{Face: faceService, History: historyService}

	faceGroup := r.Group("/api/face-detection")
	faceGroup.Use(middlewares.OptionalAuth())
	{
		faceGroup.POST("", faceController.CompareFaces)
	}
}
