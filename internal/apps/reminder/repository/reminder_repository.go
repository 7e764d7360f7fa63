package repository

import (
	"second-brain-api/internal/apps/reminder/models"

	"gorm.io/gorm"
)

// ReminderRepository defines data operations for reminders
type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	FindByID(id uint) (*models.Reminder, error)
	FindByUserID(userID uint, status string) ([]models.Reminder, error)
	Update(reminder *models.Reminder) error
	Delete(id uint) error
}

// reminderRepository implements ReminderRepository
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates an instance of ReminderRepository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// Create creates a new reminder record
func (r *reminderRepository) Create(reminder *models.Reminder) error {
	return r.db.Create(reminder).Error
}

// FindByID retrieves a reminder by its ID
func (r *reminderRepository) FindByID(id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.First(&reminder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// FindByUserID retrieves a user's reminders ordered by schedule, optionally
// filtered by status
func (r *reminderRepository) FindByUserID(userID uint, status string) ([]models.Reminder, error) {
	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reminders []models.Reminder
	if err := query.Order("scheduled_time ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// Update updates an existing reminder
func (r *reminderRepository) Update(reminder *models.Reminder) error {
	return r.db.Save(reminder).Error
}

// Delete removes a reminder
func (r *reminderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reminder{}, "id = ?", id).Error
}
