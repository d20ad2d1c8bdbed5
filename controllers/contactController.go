package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/utils"
)

// ContactMailer sends a contact-form message to the shop inbox.
type ContactMailer interface {
	SendContactMessage(data utils.ContactEmailData) (string, error)
}

type ContactController struct {
	mailer ContactMailer
}

func NewContactController(mailer ContactMailer) *ContactController {
	return &ContactController{mailer: mailer}
}

// SendContactEmail handles POST /api/send-contact-email.
func (cc *ContactController) SendContactEmail(ctx *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if body.Name == "" || body.Email == "" || body.Subject == "" || body.Message == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	emailID, err := cc.mailer.SendContactMessage(utils.ContactEmailData{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		log.Println("Failed to send contact email:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "emailId": emailID})
}
