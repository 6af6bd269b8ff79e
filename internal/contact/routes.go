package contact

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, contactService ContactServicePort) {
	contactController := &ContactController{ContactService: contactService}

	r.POST("/api/contact", contactController.SubmitMessage)
}
