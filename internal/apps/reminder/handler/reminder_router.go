package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes registers all reminder routes
func RegisterReminderRoutes(router *gin.RouterGroup, handler *ReminderHandler, requireAuth gin.HandlerFunc) {
	reminders := router.Group("/reminders", requireAuth)
	{
		reminders.POST("", handler.CreateReminder)
		reminders.GET("", handler.ListReminders)
		reminders.PATCH("/:id", handler.UpdateReminder)
		reminders.DELETE("/:id", handler.DeleteReminder)
	}
}
