package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/controllers"
)

func CheckoutRoutes(server *gin.Engine, checkoutController *controllers.CheckoutController) {
	server.GET("/api/checkout/policy", checkoutController.GetCheckoutPolicy)
	server.POST("/api/checkout/preview", checkoutController.PreviewCheckout)
}
