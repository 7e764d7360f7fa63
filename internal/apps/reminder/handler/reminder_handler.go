package handler

import (
	"errors"
	"net/http"
	"strconv"

	"second-brain-api/internal/apps/reminder/models"
	"second-brain-api/internal/apps/reminder/service"
	"second-brain-api/internal/common/middleware"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles HTTP requests for reminders
type ReminderHandler struct {
	service service.ReminderService
}

// NewReminderHandler creates a new instance of ReminderHandler
func NewReminderHandler(service service.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// CreateReminder handles POST /api/reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.service.CreateReminder(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reminder": reminder})
}

// ListReminders handles GET /api/reminders
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reminders, err := h.service.ListReminders(userID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": reminders})
}

// UpdateReminder handles PATCH /api/reminders/:id
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	var req models.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.service.UpdateReminder(userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reminder": reminder})
}

// DeleteReminder handles DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	if err := h.service.DeleteReminder(userID, id); err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
