package repository

import (
	"errors"

	"second-brain-api/internal/apps/auth/models"

	"gorm.io/gorm"
)

// AuthRepository defines data operations for auth records
type AuthRepository interface {
	Create(auth *models.Auth) error
	FindByUserID(userID uint) (*models.Auth, error)
	FindByVerificationID(verificationID string) (*models.Auth, error)
	FindByRefreshToken(refreshToken string) (*models.Auth, error)
	Update(userID uint, verificationID, refreshToken *string) error
	Upsert(userID uint, verificationID, refreshToken *string) error
	DeleteByUserID(userID uint) error
}

// authRepository implements AuthRepository
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates an instance of AuthRepository
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

// Create creates a new auth record
func (r *authRepository) Create(auth *models.Auth) error {
	return r.db.Create(auth).Error
}

// FindByUserID retrieves the auth record for a user
func (r *authRepository) FindByUserID(userID uint) (*models.Auth, error) {
	var auth models.Auth
	if err := r.db.Where("user_id = ?", userID).First(&auth).Error; err != nil {
		return nil, err
	}
	return &auth, nil
}

// FindByVerificationID retrieves an auth record by pending verification id
func (r *authRepository) FindByVerificationID(verificationID string) (*models.Auth, error) {
	var auth models.Auth
	if err := r.db.Where("verification_id = ?", verificationID).First(&auth).Error; err != nil {
		return nil, err
	}
	return &auth, nil
}

// FindByRefreshToken retrieves an auth record by exact refresh token match
func (r *authRepository) FindByRefreshToken(refreshToken string) (*models.Auth, error) {
	var auth models.Auth
	if err := r.db.Where("refresh_token = ?", refreshToken).First(&auth).Error; err != nil {
		return nil, err
	}
	return &auth, nil
}

// Update overwrites the provided columns for a user's auth record.
// Nil fields are preserved (coalesce-on-null semantics).
func (r *authRepository) Update(userID uint, verificationID, refreshToken *string) error {
	updates := map[string]interface{}{}
	if verificationID != nil {
		updates["verification_id"] = *verificationID
	}
	if refreshToken != nil {
		updates["refresh_token"] = *refreshToken
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Auth{}).Where("user_id = ?", userID).Updates(updates).Error
}

// Upsert updates the user's auth record if one exists, otherwise creates it
func (r *authRepository) Upsert(userID uint, verificationID, refreshToken *string) error {
	_, err := r.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.Create(&models.Auth{
				UserID:         userID,
				VerificationID: verificationID,
				RefreshToken:   refreshToken,
			})
		}
		return err
	}
	return r.Update(userID, verificationID, refreshToken)
}

// DeleteByUserID removes the auth record for a user
func (r *authRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Auth{}).Error
}
