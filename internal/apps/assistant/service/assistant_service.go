package service

import (
	"context"
	"fmt"

	"second-brain-api/internal/apps/assistant/models"
	"second-brain-api/internal/apps/assistant/repository"
	reminderModels "second-brain-api/internal/apps/reminder/models"
	reminderRepository "second-brain-api/internal/apps/reminder/repository"
)

// historyLimit bounds how many prior messages are replayed as context.
const historyLimit = 20

// AssistantService defines the interface for assistant conversations
type AssistantService interface {
	Reply(ctx context.Context, userID uint, message string) (string, error)
}

// assistantService implements AssistantService
type assistantService struct {
	messages  repository.MessageRepository
	reminders reminderRepository.ReminderRepository
	provider  LLMProvider
}

// NewAssistantService creates a new instance of AssistantService
func NewAssistantService(
	messages repository.MessageRepository,
	reminders reminderRepository.ReminderRepository,
	provider LLMProvider,
) AssistantService {
	return &assistantService{
		messages:  messages,
		reminders: reminders,
		provider:  provider,
	}
}

// Reply stores the inbound message, generates the assistant's answer with
// recent conversation context, stores it, and opportunistically persists any
// reminder the model spotted in the exchange. Reminder extraction is
// best-effort and never fails the reply.
func (s *assistantService) Reply(ctx context.Context, userID uint, message string) (string, error) {
	history, err := s.loadHistory(userID)
	if err != nil {
		return "", err
	}

	if err := s.store(userID, message, models.DirectionInbound); err != nil {
		return "", err
	}

	reply, err := s.provider.GenerateReply(ctx, history, message)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if err := s.store(userID, reply, models.DirectionOutbound); err != nil {
		return "", err
	}

	s.extractReminder(ctx, userID, append(history,
		Turn{Role: "user", Content: message},
		Turn{Role: "assistant", Content: reply},
	))

	return reply, nil
}

func (s *assistantService) loadHistory(userID uint) ([]Turn, error) {
	rows, err := s.messages.FindRecentByUserID(userID, historyLimit)
	if err != nil {
		return nil, err
	}

	history := make([]Turn, 0, len(rows))
	for i := range rows {
		role := "user"
		if rows[i].Direction == models.DirectionOutbound {
			role = "assistant"
		}
		history = append(history, Turn{Role: role, Content: rows[i].Content})
	}
	return history, nil
}

func (s *assistantService) store(userID uint, content, direction string) error {
	return s.messages.Create(&models.Message{
		UserID:      userID,
		Content:     content,
		Source:      models.MessageSourceChat,
		MessageType: models.MessageTypeText,
		Direction:   direction,
	})
}

func (s *assistantService) extractReminder(ctx context.Context, userID uint, conversation []Turn) {
	extracted, err := s.provider.ExtractReminder(ctx, conversation)
	if err != nil || extracted == nil {
		return
	}

	// ignore persistence failure: the reply already went out
	_ = s.reminders.Create(&reminderModels.Reminder{
		UserID:        userID,
		Content:       extracted.Content,
		ScheduledTime: extracted.ScheduledTime,
		Status:        reminderModels.ReminderStatusPending,
		AIGenerated:   true,
	})
}
