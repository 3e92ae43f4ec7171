package handlers

import (
	"net/http"

	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last observed store health.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"stores": utils.GetHealthStatus(),
		})
	}
}
