package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID          int     `json:"cartId"`
	ProductId       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductPrice    float64 `json:"productPrice"`
	Quantity        int     `json:"quantity"`
	VariantSize     string  `json:"variantSize"`
	VariantColor    string  `json:"variantColor"`
	ProductImageUrl string  `json:"productImageUrl"`
}

type Cart struct {
	gorm.Model
	// Opaque key generated by the client; carts are anonymous.
	ClientKey string     `json:"clientKey" gorm:"size:64;uniqueIndex"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type WishlistItem struct {
	gorm.Model
	ClientKey       string `json:"clientKey" gorm:"size:64;index"`
	ProductId       int    `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImageUrl string `json:"productImageUrl"`
}
