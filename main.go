package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/controllers"
	"github.com/sisies/sisies-api/initializers"
	"github.com/sisies/sisies-api/routes"
	"github.com/sisies/sisies-api/services"
	"github.com/sisies/sisies-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db := initializers.ConnectToDB(cfg)
	initializers.SyncDatabase(db)

	mailer := utils.NewMailer(cfg.Mail)
	dispatcher := services.NewNotificationDispatcher(mailer, cfg.Notify)
	defer dispatcher.Close()

	orderRepo := services.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepo, dispatcher)

	orderController := controllers.NewOrderController(orderService)
	checkoutController := controllers.NewCheckoutController(cfg.Shipping, cfg.Promo)
	notificationController := controllers.NewNotificationController(dispatcher, orderRepo)
	contactController := controllers.NewContactController(mailer)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, cfg.AWS)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server, checkoutController)
	routes.OrderRoutes(server, orderController)
	routes.NotificationRoutes(server, notificationController, contactController)

	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
