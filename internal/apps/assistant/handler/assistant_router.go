package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers all assistant routes
func RegisterAssistantRoutes(router *gin.RouterGroup, handler *AssistantHandler, requireAuth gin.HandlerFunc) {
	assistant := router.Group("/assistant", requireAuth)
	{
		assistant.POST("/chat", handler.Chat)
	}
}
