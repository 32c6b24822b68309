package controllers

import (
	"net/http"
	"net/mail"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/services"
	"github.com/gin-gonic/gin"
)

type ContactController struct {
	mailer *services.ContactMailer
	log    *logger.Logger
}

func NewContactController(mailer *services.ContactMailer, log *logger.Logger) *ContactController {
	return &ContactController{mailer: mailer, log: log}
}

func (cc *ContactController) SubmitContact(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	if err := cc.mailer.Send(c.Request.Context(), input.Name, input.Email, input.Message); err != nil {
		cc.log.Error("contact mail delivery failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for contacting us!"})
}
