package models

import "time"

// User represents an application user, created on first verification attempt
// for an unseen phone number.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"size:20;not null;uniqueIndex" json:"phone_number"`
	Name        *string   `gorm:"size:100" json:"name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name to 'users'
func (User) TableName() string { return "users" }

// UpdateUserRequest represents the request body for updating the current user
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
}

// UserResponse represents the response payload for user operations
type UserResponse struct {
	ID          uint      `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Name        *string   `json:"name,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse converts User model to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		CreatedAt:   u.CreatedAt,
	}
}
