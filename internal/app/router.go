package app

import (
	authHandler "nexcraft-service/internal/handlers/auth"
	contactHandler "nexcraft-service/internal/handlers/contact"
	contentHandler "nexcraft-service/internal/handlers/content"
	statusHandler "nexcraft-service/internal/handlers/status"
	wsHandler "nexcraft-service/internal/handlers/ws"
	"nexcraft-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	ContactHandler *contactHandler.ContactHandler
	StatusHandler  *statusHandler.StatusHandler
	ContentHandler *contentHandler.ContentHandler
	WSHandler      *wsHandler.WSHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Public Routes ====================
	api.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Hello World"})
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/status", h.StatusHandler.Create)
	api.GET("/status", h.StatusHandler.List)

	api.POST("/contact", h.ContactHandler.Create)

	api.GET("/content", h.ContentHandler.Get)

	// ==================== Admin Routes ====================
	admin := api.Group("/admin")
	{
		admin.POST("/signup", h.AuthHandler.Signup)
		admin.POST("/login", h.AuthHandler.Login)

		protected := admin.Group("")
		protected.Use(h.AuthMiddleware.Auth())
		{
			protected.GET("/me", h.AuthHandler.Me)
			protected.GET("/contacts", h.ContactHandler.List)
			protected.DELETE("/contacts/:id", h.ContactHandler.Delete)
			protected.PUT("/content", h.ContentHandler.Update)
			protected.GET("/ws", h.WSHandler.Feed)
		}
	}
}
