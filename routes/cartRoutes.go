package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/cart", controllers.AddCartItem)
	server.GET("/cart/:clientKey", controllers.GetCart)
	server.PATCH("/cart/:clientKey/item/:itemId", controllers.UpdateCartItemQuantity)
	server.DELETE("/cart/:clientKey/item/:itemId", controllers.RemoveCartItem)
	server.DELETE("/cart/:clientKey", controllers.ClearCart)

	server.POST("/wishlist", controllers.AddWishlistItem)
	server.GET("/wishlist/:clientKey", controllers.GetWishlist)
	server.DELETE("/wishlist/:clientKey/:productId", controllers.RemoveWishlistItem)
}
