package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/controllers"
)

func ProductRoutes(server *gin.Engine, awsCfg config.AWSConfig) {
	server.POST("/product", controllers.CreateProduct)
	server.POST("/product-specs", controllers.CreateProductSpecs)
	server.POST("/product-images", controllers.UploadProductImages(awsCfg))
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
}
