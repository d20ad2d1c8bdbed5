package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Sisies API ❤️.

The following are the endpoints for this API:

PRODUCT
- POST "/product" - Create new product
- GET "/product" - Get all products
- POST "/product-specs" - Add product specifications
- POST "/product-images" - Add product images
- GET "/product/{id}" - Get product by ID

CART & WISHLIST
- POST "/cart" - Add item to a cart
- GET "/cart/{clientKey}" - Get a cart
- PATCH "/cart/{clientKey}/item/{itemId}" - Update cart item quantity
- DELETE "/cart/{clientKey}/item/{itemId}" - Remove cart item
- DELETE "/cart/{clientKey}" - Clear a cart
- POST "/wishlist" - Add item to a wishlist
- GET "/wishlist/{clientKey}" - Get a wishlist
- DELETE "/wishlist/{clientKey}/{productId}" - Remove wishlist item

CHECKOUT & ORDERS
- POST "/api/checkout" - Submit an order
- GET "/order" - Retrieve all orders
- GET "/order/{orderId}" - Get order by ID or order number
- PATCH "/order/{orderId}" - Update order status
- DELETE "/order/{orderId}" - Delete order by ID
- GET "/orders/undelivered-count" - Count undelivered orders

NOTIFICATIONS
- POST "/api/send-confirmation-email" - Send order confirmation email
- POST "/api/send-contact-email" - Send contact form message

HEALTH
- GET "/api/health/db" - Database health check`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
