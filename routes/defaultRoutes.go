package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/health/db", controllers.GetDatabaseHealth)
}
