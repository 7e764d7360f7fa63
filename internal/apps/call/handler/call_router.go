package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterCallRoutes registers all call routes. The incoming and status
// endpoints are provider webhooks and carry no bearer token.
func RegisterCallRoutes(router *gin.RouterGroup, handler *CallHandler, requireAuth gin.HandlerFunc) {
	calls := router.Group("/calls")
	{
		calls.GET("/token", requireAuth, handler.VoiceToken)
		calls.POST("/incoming", handler.IncomingCall)
		calls.POST("/twiml/:userID", handler.CallTwiML)
		calls.POST("/openai-stream/:userID", handler.OpenAIStream)
		calls.POST("/status", handler.StatusCallback)
		calls.POST("/outgoing", requireAuth, handler.OutgoingCall)
		calls.GET("/history", requireAuth, handler.History)
	}
}
