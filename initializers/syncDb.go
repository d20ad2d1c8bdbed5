package initializers

import (
	"log"

	"github.com/sisies/sisies-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.ProductSpecs{},
		&models.Cart{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	log.Println("Database synced successfully.")
}
