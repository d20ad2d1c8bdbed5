package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductSpecs struct {
	gorm.Model
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Name           string         `json:"name" binding:"required"`
	Description    string         `json:"description" binding:"required"`
	Price          float64        `json:"price" binding:"required"`
	Category       string         `json:"category" binding:"required"`
	Colors         datatypes.JSON `json:"colors"`
	Sizes          datatypes.JSON `json:"sizes"`
	CareGuide      string         `json:"careGuide"`
	Specifications []ProductSpecs `json:"specifications" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
