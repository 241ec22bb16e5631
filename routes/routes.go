package routes

import (
	"meetsync/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the scheduling assistant.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/", handlers.Root)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/chat", handlers.Chat)
		api.GET("/records", handlers.ListRecords)
	}

	auth := r.Group("/api/auth")
	{
		auth.GET("/url", handlers.AuthURL)
		auth.GET("/callback", handlers.AuthCallback)
	}
}
