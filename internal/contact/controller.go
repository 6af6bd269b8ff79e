package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService ContactServicePort
}

// POST /api/contact
func (cc *ContactController) SubmitMessage(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := cc.ContactService.Submit(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message received",
		"id":      msg.ID,
	})
}
