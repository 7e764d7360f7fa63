package models

import (
	"time"

	userModels "second-brain-api/internal/apps/user/models"
)

// Message sources
const (
	MessageSourceChat = "chat"
	MessageSourceCall = "call"
)

// Message directions
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Message types
const (
	MessageTypeText = "text"
)

// Message represents one turn of a user's conversation with the assistant
type Message struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	User        userModels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	Source      string          `gorm:"size:20;not null" json:"source"`
	MessageType string          `gorm:"size:20;not null" json:"message_type"`
	Direction   string          `gorm:"size:10;not null" json:"direction"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName sets the table name to 'messages'
func (Message) TableName() string { return "messages" }

// ChatRequest payload for a conversational turn with the assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}
