package handler

import (
	"net/http"

	"second-brain-api/internal/apps/assistant/models"
	"second-brain-api/internal/apps/assistant/service"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles HTTP requests for assistant conversations
type AssistantHandler struct {
	service service.AssistantService
}

// NewAssistantHandler creates a new instance of AssistantHandler
func NewAssistantHandler(service service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// Chat handles POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), userID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reply"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Success: true, Reply: reply})
}
