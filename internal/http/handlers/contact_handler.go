package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ContactHandler struct {
	contact *services.ContactService
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.ErrInvalidInput("All fields are required"))
		return
	}

	err := h.contact.Relay(c.Request.Context(), services.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}
