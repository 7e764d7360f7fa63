package handler

import (
	"log"
	"net/http"
	"strconv"

	"second-brain-api/internal/apps/call/models"
	"second-brain-api/internal/apps/call/service"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
)

// CallHandler handles HTTP requests for voice calls
type CallHandler struct {
	service service.CallService
}

// NewCallHandler creates a new instance of CallHandler
func NewCallHandler(service service.CallService) *CallHandler {
	return &CallHandler{service: service}
}

// VoiceToken handles GET /api/calls/token
func (h *CallHandler) VoiceToken(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := h.service.VoiceToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// IncomingCall handles POST /api/calls/incoming (provider webhook, form-encoded)
func (h *CallHandler) IncomingCall(c *gin.Context) {
	from := c.PostForm("From")
	to := c.PostForm("To")
	callSID := c.PostForm("CallSid")

	twiml, err := h.service.IncomingCall(from, to, callSID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle incoming call"})
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(twiml))
}

// CallTwiML handles POST /api/calls/twiml/:userID (provider fetches call
// control when an outgoing call is answered)
func (h *CallHandler) CallTwiML(c *gin.Context) {
	twiml, err := h.service.CallTwiML(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle call"})
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(twiml))
}

// OpenAIStream handles POST /api/calls/openai-stream/:userID. The media
// bridge between the provider stream and the assistant is not built yet;
// the endpoint acknowledges the request so call setup can complete.
// TODO: bridge the provider media-stream websocket to the assistant.
func (h *CallHandler) OpenAIStream(c *gin.Context) {
	log.Printf("OpenAI stream requested for user %s", c.Param("userID"))
	c.JSON(http.StatusOK, gin.H{"message": "OpenAI stream endpoint"})
}

// StatusCallback handles POST /api/calls/status (provider webhook, form-encoded)
func (h *CallHandler) StatusCallback(c *gin.Context) {
	callSID := c.PostForm("CallSid")
	callStatus := c.PostForm("CallStatus")

	var duration *int
	if raw := c.PostForm("CallDuration"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil {
			duration = &seconds
		}
	}

	if err := h.service.StatusCallback(callSID, callStatus, duration); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle status callback"})
		return
	}

	c.Status(http.StatusOK)
}

// OutgoingCall handles POST /api/calls/outgoing
func (h *CallHandler) OutgoingCall(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.OutgoingCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	resp, err := h.service.OutgoingCall(userID, req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate call"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History handles GET /api/calls/history
func (h *CallHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	calls, err := h.service.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get call history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "calls": calls})
}
