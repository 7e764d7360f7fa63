package models

import (
	"time"

	userModels "second-brain-api/internal/apps/user/models"
)

// Auth holds the most recent in-flight verification attempt and the most
// recently issued refresh token for a user. One row per user; each new
// attempt overwrites the previous one.
type Auth struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;uniqueIndex" json:"user_id"`
	User           userModels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	VerificationID *string         `gorm:"size:100" json:"verification_id,omitempty"`
	RefreshToken   *string         `gorm:"size:500" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName sets the table name to 'auth'
func (Auth) TableName() string { return "auth" }

// SendVerificationRequest payload to start phone verification
type SendVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// SendVerificationResponse carries the provider's pending verification id
type SendVerificationResponse struct {
	Success        bool   `json:"success"`
	VerificationID string `json:"verificationId"`
}

// VerifyCodeRequest payload to confirm a one-time code
type VerifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// VerifyCodeResponse is returned on successful verification
type VerifyCodeResponse struct {
	Success      bool                    `json:"success"`
	User         userModels.UserResponse `json:"user"`
	AccessToken  string                  `json:"accessToken"`
	RefreshToken string                  `json:"refreshToken"`
}

// RefreshTokenRequest payload to exchange a refresh token for a new access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse carries the newly issued access token
type RefreshTokenResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}
