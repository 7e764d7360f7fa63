package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all auth routes
func RegisterAuthRoutes(router *gin.RouterGroup, handler *AuthHandler, requireAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/send-verification", handler.SendVerification)
		auth.POST("/verify-code", handler.VerifyCode)
		auth.POST("/refresh-token", handler.RefreshToken)
		auth.GET("/me", requireAuth, handler.GetCurrentUser)
		auth.PUT("/me", requireAuth, handler.UpdateCurrentUser)
	}
}
