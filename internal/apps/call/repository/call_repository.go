package repository

import (
	"time"

	"second-brain-api/internal/apps/call/models"

	"gorm.io/gorm"
)

// CallRepository defines data operations for calls
type CallRepository interface {
	Create(call *models.Call) error
	FindByID(id uint) (*models.Call, error)
	FindByCallSID(callSID string) (*models.Call, error)
	FindByUserID(userID uint) ([]models.Call, error)
	Update(id uint, update CallUpdate) error
}

// CallUpdate carries a partial update; nil fields are preserved
type CallUpdate struct {
	Status    *string
	Duration  *int
	StartedAt *time.Time
	EndedAt   *time.Time
}

// callRepository implements CallRepository
type callRepository struct {
	db *gorm.DB
}

// NewCallRepository creates an instance of CallRepository
func NewCallRepository(db *gorm.DB) CallRepository {
	return &callRepository{db: db}
}

// Create creates a new call record
func (r *callRepository) Create(call *models.Call) error {
	return r.db.Create(call).Error
}

// FindByID retrieves a call by its ID
func (r *callRepository) FindByID(id uint) (*models.Call, error) {
	var call models.Call
	if err := r.db.First(&call, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// FindByCallSID retrieves a call by provider call SID
func (r *callRepository) FindByCallSID(callSID string) (*models.Call, error) {
	var call models.Call
	if err := r.db.Where("provider_call_sid = ?", callSID).First(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// FindByUserID retrieves a user's calls, newest first
func (r *callRepository) FindByUserID(userID uint) ([]models.Call, error) {
	var calls []models.Call
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// Update overwrites the provided columns for a call record
func (r *callRepository) Update(id uint, update CallUpdate) error {
	updates := map[string]interface{}{}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.Duration != nil {
		updates["duration"] = *update.Duration
	}
	if update.StartedAt != nil {
		updates["started_at"] = *update.StartedAt
	}
	if update.EndedAt != nil {
		updates["ended_at"] = *update.EndedAt
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Call{}).Where("id = ?", id).Updates(updates).Error
}
