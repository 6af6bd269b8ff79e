package history

import (
	"facevoice-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, historyService HistoryServicePort) {
	historyController := &HistoryController{HistoryService: historyService}

	historyGroup := r.Group("/api/history")
	historyGroup.Use(middlewares.AuthMiddleware())
	{
		historyGroup.GET("", historyController.GetHistory)
		historyGroup.GET("/export", historyController.ExportHistory)
	}
}
