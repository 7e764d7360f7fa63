package models

import (
	"time"

	userModels "second-brain-api/internal/apps/user/models"
)

// Reminder statuses
const (
	ReminderStatusPending   = "pending"
	ReminderStatusCompleted = "completed"
	ReminderStatusCanceled  = "canceled"
)

// Reminder represents a scheduled reminder, either user-created or extracted
// from an assistant conversation
type Reminder struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	UserID            uint            `gorm:"not null;index:idx_reminders_user_id_status" json:"user_id"`
	User              userModels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content           string          `gorm:"type:text;not null" json:"content"`
	ScheduledTime     time.Time       `gorm:"not null;index" json:"scheduled_time"`
	Status            string          `gorm:"size:20;not null;default:pending;index:idx_reminders_user_id_status" json:"status"`
	RecurrencePattern *string         `gorm:"size:100" json:"recurrence_pattern,omitempty"`
	AIGenerated       bool            `gorm:"not null;default:false" json:"ai_generated"`
	Priority          int             `gorm:"not null;default:0" json:"priority"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName sets the table name to 'reminders'
func (Reminder) TableName() string { return "reminders" }

// CreateReminderRequest represents the request body for creating a reminder
type CreateReminderRequest struct {
	Content           string    `json:"content" binding:"required"`
	ScheduledTime     time.Time `json:"scheduledTime" binding:"required"`
	RecurrencePattern *string   `json:"recurrencePattern,omitempty"`
	Priority          int       `json:"priority,omitempty"`
}

// UpdateReminderRequest represents a partial reminder update
type UpdateReminderRequest struct {
	Content       *string    `json:"content,omitempty"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Priority      *int       `json:"priority,omitempty"`
}

// ReminderResponse represents the response payload for reminder operations
type ReminderResponse struct {
	ID                uint      `json:"id"`
	Content           string    `json:"content"`
	ScheduledTime     time.Time `json:"scheduledTime"`
	Status            string    `json:"status"`
	RecurrencePattern *string   `json:"recurrencePattern,omitempty"`
	AIGenerated       bool      `json:"aiGenerated"`
	Priority          int       `json:"priority"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToResponse converts Reminder model to ReminderResponse
func (r *Reminder) ToResponse() ReminderResponse {
	return ReminderResponse{
		ID:                r.ID,
		Content:           r.Content,
		ScheduledTime:     r.ScheduledTime,
		Status:            r.Status,
		RecurrencePattern: r.RecurrencePattern,
		AIGenerated:       r.AIGenerated,
		Priority:          r.Priority,
		CreatedAt:         r.CreatedAt,
	}
}
