package handlers

import (
	"net/http"
	"time"

	"meetsync/config"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Root is a plain liveness message for browser checks.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "✅ meetsync backend is running."})
}

// Health reports service health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    config.GetEnv(),
		"uptime": time.Since(startTime).String(),
	})
}
