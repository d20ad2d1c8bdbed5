package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/initializers"
	"github.com/sisies/sisies-api/models"
	"github.com/sisies/sisies-api/pricing"
	"gorm.io/gorm"
)

const (
	msgFailedToCreateCart = "Failed to create cart"
	msgCartNotFound       = "Cart not found"
)

func findOrCreateCart(clientKey string) (*models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("client_key = ?", clientKey).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{ClientKey: clientKey}
	if result := initializers.DB.Create(&cart); result.Error != nil {
		return nil, result.Error
	}
	return &cart, nil
}

// AddCartItem handles POST /cart. Lines with the same product and variant
// size merge by summing quantities.
func AddCartItem(ctx *gin.Context) {
	var body struct {
		ClientKey       string `json:"clientKey"`
		ProductId       int    `json:"productId"`
		ProductName     string `json:"productName"`
		ProductPrice    any    `json:"productPrice"`
		Quantity        any    `json:"quantity"`
		VariantSize     string `json:"variantSize"`
		VariantColor    string `json:"variantColor"`
		ProductImageUrl string `json:"productImageUrl"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if body.ClientKey == "" || body.ProductId == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "clientKey and productId are required")
		return
	}

	cart, err := findOrCreateCart(body.ClientKey)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateCart)
		return
	}

	quantity := pricing.NormalizeQuantity(body.Quantity)

	var existingItem models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND product_id = ? AND variant_size = ?", cart.ID, body.ProductId, body.VariantSize).
		First(&existingItem).Error

	if err == nil {
		existingItem.Quantity += quantity
		if err := initializers.DB.Save(&existingItem).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart item quantity updated",
			"id":      existingItem.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error: ", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	cartItem := models.CartItem{
		CartID:          int(cart.ID),
		ProductId:       body.ProductId,
		ProductName:     body.ProductName,
		ProductPrice:    pricing.Normalize(body.ProductPrice),
		Quantity:        quantity,
		VariantSize:     body.VariantSize,
		VariantColor:    body.VariantColor,
		ProductImageUrl: body.ProductImageUrl,
	}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": cartItem.ProductName + " added to cart",
		"id":      cartItem.ID,
	})
}

func GetCart(ctx *gin.Context) {
	clientKey := ctx.Param("clientKey")

	var cart models.Cart
	result := initializers.DB.
		Where("client_key = ?", clientKey).
		Preload("Items").
		First(&cart)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// UpdateCartItemQuantity handles PATCH /cart/:clientKey/item/:itemId. A
// quantity below 1 removes the line, matching the storefront controls.
func UpdateCartItemQuantity(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse itemId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if body.Quantity < 1 {
		deleteCartItem(ctx, itemId)
		return
	}

	result := initializers.DB.Model(&models.CartItem{}).
		Where("id = ?", itemId).
		Update("quantity", body.Quantity)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

func RemoveCartItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse itemId")
		return
	}
	deleteCartItem(ctx, itemId)
}

func deleteCartItem(ctx *gin.Context, itemId int) {
	if result := initializers.DB.Delete(&models.CartItem{}, itemId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}

// ClearCart handles DELETE /cart/:clientKey, used after order completion.
func ClearCart(ctx *gin.Context) {
	clientKey := ctx.Param("clientKey")

	var cart models.Cart
	if err := initializers.DB.Where("client_key = ?", clientKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	if err := initializers.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}

func AddWishlistItem(ctx *gin.Context) {
	var item models.WishlistItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if item.ClientKey == "" || item.ProductId == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "clientKey and productId are required")
		return
	}

	var existing models.WishlistItem
	err := initializers.DB.
		Where("client_key = ? AND product_id = ?", item.ClientKey, item.ProductId).
		First(&existing).Error
	if err == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Already in wishlist", "id": existing.ID})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add to wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": item.ProductName + " added to wishlist",
		"id":      item.ID,
	})
}

func GetWishlist(ctx *gin.Context) {
	clientKey := ctx.Param("clientKey")

	var items []models.WishlistItem
	if result := initializers.DB.Where("client_key = ?", clientKey).Find(&items); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": items})
}

func RemoveWishlistItem(ctx *gin.Context) {
	clientKey := ctx.Param("clientKey")
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse productId")
		return
	}

	result := initializers.DB.
		Where("client_key = ? AND product_id = ?", clientKey, productId).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove wishlist item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Wishlist item removed"})
}
