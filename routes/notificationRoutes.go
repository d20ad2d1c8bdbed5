package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/controllers"
)

func NotificationRoutes(server *gin.Engine, notificationController *controllers.NotificationController, contactController *controllers.ContactController) {
	server.POST("/api/send-confirmation-email", notificationController.SendConfirmationEmail)
	server.POST("/api/send-contact-email", contactController.SendContactEmail)
}
