package service

import (
	"errors"

	"second-brain-api/internal/apps/reminder/models"
	"second-brain-api/internal/apps/reminder/repository"

	"gorm.io/gorm"
)

// ErrReminderNotFound is returned when a reminder does not exist or belongs
// to another user.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderService defines the interface for reminder business logic
type ReminderService interface {
	CreateReminder(userID uint, req models.CreateReminderRequest) (*models.ReminderResponse, error)
	ListReminders(userID uint, status string) ([]models.ReminderResponse, error)
	UpdateReminder(userID, id uint, req models.UpdateReminderRequest) (*models.ReminderResponse, error)
	DeleteReminder(userID, id uint) error
}

// reminderService implements ReminderService
type reminderService struct {
	repo repository.ReminderRepository
}

// NewReminderService creates a new instance of ReminderService
func NewReminderService(repo repository.ReminderRepository) ReminderService {
	return &reminderService{repo: repo}
}

// CreateReminder creates a reminder owned by the user
func (s *reminderService) CreateReminder(userID uint, req models.CreateReminderRequest) (*models.ReminderResponse, error) {
	reminder := &models.Reminder{
		UserID:            userID,
		Content:           req.Content,
		ScheduledTime:     req.ScheduledTime,
		Status:            models.ReminderStatusPending,
		RecurrencePattern: req.RecurrencePattern,
		Priority:          req.Priority,
	}
	if err := s.repo.Create(reminder); err != nil {
		return nil, err
	}
	resp := reminder.ToResponse()
	return &resp, nil
}

// ListReminders returns the user's reminders, optionally filtered by status
func (s *reminderService) ListReminders(userID uint, status string) ([]models.ReminderResponse, error) {
	reminders, err := s.repo.FindByUserID(userID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ReminderResponse, 0, len(reminders))
	for i := range reminders {
		responses = append(responses, reminders[i].ToResponse())
	}
	return responses, nil
}

// UpdateReminder applies a partial update to a reminder the user owns
func (s *reminderService) UpdateReminder(userID, id uint, req models.UpdateReminderRequest) (*models.ReminderResponse, error) {
	reminder, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		reminder.Content = *req.Content
	}
	if req.ScheduledTime != nil {
		reminder.ScheduledTime = *req.ScheduledTime
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ReminderStatusPending, models.ReminderStatusCompleted, models.ReminderStatusCanceled:
			reminder.Status = *req.Status
		default:
			return nil, errors.New("invalid reminder status")
		}
	}
	if req.Priority != nil {
		reminder.Priority = *req.Priority
	}

	if err := s.repo.Update(reminder); err != nil {
		return nil, err
	}
	resp := reminder.ToResponse()
	return &resp, nil
}

// DeleteReminder removes a reminder the user owns
func (s *reminderService) DeleteReminder(userID, id uint) error {
	reminder, err := s.findOwned(userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(reminder.ID)
}

func (s *reminderService) findOwned(userID, id uint) (*models.Reminder, error) {
	reminder, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, ErrReminderNotFound
	}
	return reminder, nil
}
