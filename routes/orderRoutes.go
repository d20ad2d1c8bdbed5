package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/controllers"
)

func OrderRoutes(server *gin.Engine, orderController *controllers.OrderController) {
	server.POST("/api/checkout", orderController.CreateOrder)
	server.GET("/order", controllers.GetOrders)
	server.GET("/order/:orderId", controllers.GetOrderById)
	server.PATCH("/order/:orderId", controllers.UpdateOrderStatus)
	server.DELETE("/order/:orderId", controllers.DeleteOrder)
	server.GET("/orders/undelivered-count", controllers.GetUndeliveredOrders)
}
