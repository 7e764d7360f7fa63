package models

import (
	"time"

	userModels "second-brain-api/internal/apps/user/models"
)

// Call types
const (
	CallTypeIncoming = "incoming"
	CallTypeOutgoing = "outgoing"
)

// Call statuses follow the provider's lifecycle; terminal rows are immutable.
const (
	CallStatusInitiated  = "initiated"
	CallStatusRinging    = "ringing"
	CallStatusInProgress = "in-progress"
	CallStatusCompleted  = "completed"
	CallStatusBusy       = "busy"
	CallStatusFailed     = "failed"
	CallStatusNoAnswer   = "no-answer"
	CallStatusCanceled   = "canceled"
)

// IsTerminalStatus reports whether a call status admits no further updates
func IsTerminalStatus(status string) bool {
	switch status {
	case CallStatusCompleted, CallStatusBusy, CallStatusFailed, CallStatusNoAnswer, CallStatusCanceled:
		return true
	}
	return false
}

// Call represents a voice call brokered through the telephony provider
type Call struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            userModels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProviderCallSID *string         `gorm:"column:provider_call_sid;size:100" json:"provider_call_sid,omitempty"`
	Duration        *int            `json:"duration,omitempty"`
	Status          string          `gorm:"size:20;not null" json:"status"`
	Type            string          `gorm:"size:20;not null" json:"type"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName sets the table name to 'calls'
func (Call) TableName() string { return "calls" }

// OutgoingCallRequest payload to place a call to the given number
type OutgoingCallRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// OutgoingCallResponse is returned once the provider accepts the call
type OutgoingCallResponse struct {
	Success bool   `json:"success"`
	CallSID string `json:"callSid"`
	Status  string `json:"status"`
}

// CallResponse represents the response payload for call history entries
type CallResponse struct {
	ID        uint       `json:"id"`
	CallSID   *string    `json:"callSid,omitempty"`
	Duration  *int       `json:"duration,omitempty"`
	Status    string     `json:"status"`
	Type      string     `json:"type"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToResponse converts Call model to CallResponse
func (c *Call) ToResponse() CallResponse {
	return CallResponse{
		ID:        c.ID,
		CallSID:   c.ProviderCallSID,
		Duration:  c.Duration,
		Status:    c.Status,
		Type:      c.Type,
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
		CreatedAt: c.CreatedAt,
	}
}
