package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/service"
)

// HealthCheck handles GET /health, probing datastore connectivity.
func HealthCheck(c *gin.Context) {
	if !service.HealthCheck(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResp{
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResp{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	})
}
