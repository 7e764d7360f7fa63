package repository

import (
	"second-brain-api/internal/apps/assistant/models"

	"gorm.io/gorm"
)

// MessageRepository defines data operations for conversation messages
type MessageRepository interface {
	Create(message *models.Message) error
	FindRecentByUserID(userID uint, limit int) ([]models.Message, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates an instance of MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message record
func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindRecentByUserID retrieves the user's most recent messages in
// chronological order
func (r *messageRepository) FindRecentByUserID(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// reverse to chronological order for prompt assembly
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
