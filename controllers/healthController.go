package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/initializers"
)

// GetDatabaseHealth handles GET /api/health/db.
func GetDatabaseHealth(ctx *gin.Context) {
	sqlDB, err := initializers.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
