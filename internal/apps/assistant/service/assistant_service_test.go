package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"second-brain-api/internal/apps/assistant/models"
	reminderModels "second-brain-api/internal/apps/reminder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessageRepo is an in-memory MessageRepository
type fakeMessageRepo struct {
	messages []models.Message
}

func (f *fakeMessageRepo) Create(message *models.Message) error {
	message.ID = uint(len(f.messages) + 1)
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) FindRecentByUserID(userID uint, limit int) ([]models.Message, error) {
	var result []models.Message
	for _, m := range f.messages {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}

// fakeReminderRepo records created reminders
type fakeReminderRepo struct {
	created []reminderModels.Reminder
}

func (f *fakeReminderRepo) Create(reminder *reminderModels.Reminder) error {
	f.created = append(f.created, *reminder)
	return nil
}

func (f *fakeReminderRepo) FindByID(id uint) (*reminderModels.Reminder, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReminderRepo) FindByUserID(userID uint, status string) ([]reminderModels.Reminder, error) {
	return nil, nil
}

func (f *fakeReminderRepo) Update(reminder *reminderModels.Reminder) error { return nil }
func (f *fakeReminderRepo) Delete(id uint) error                           { return nil }

// fakeLLMProvider returns a scripted reply and reminder
type fakeLLMProvider struct {
	reply       string
	replyErr    error
	reminder    *ExtractedReminder
	reminderErr error
	seenHistory []Turn
}

func (f *fakeLLMProvider) GenerateReply(ctx context.Context, history []Turn, message string) (string, error) {
	f.seenHistory = history
	return f.reply, f.replyErr
}

func (f *fakeLLMProvider) ExtractReminder(ctx context.Context, history []Turn) (*ExtractedReminder, error) {
	return f.reminder, f.reminderErr
}

func TestReply_StoresBothTurns(t *testing.T) {
	messages := &fakeMessageRepo{}
	reminders := &fakeReminderRepo{}
	provider := &fakeLLMProvider{reply: "Noted."}
	svc := NewAssistantService(messages, reminders, provider)

	reply, err := svc.Reply(context.Background(), 42, "Remember my keys are in the drawer")
	require.NoError(t, err)
	assert.Equal(t, "Noted.", reply)

	require.Len(t, messages.messages, 2)
	assert.Equal(t, models.DirectionInbound, messages.messages[0].Direction)
	assert.Equal(t, models.DirectionOutbound, messages.messages[1].Direction)
	assert.Equal(t, "Noted.", messages.messages[1].Content)
}

func TestReply_PassesHistory(t *testing.T) {
	messages := &fakeMessageRepo{}
	provider := &fakeLLMProvider{reply: "ok"}
	svc := NewAssistantService(messages, &fakeReminderRepo{}, provider)

	_, err := svc.Reply(context.Background(), 42, "first")
	require.NoError(t, err)
	_, err = svc.Reply(context.Background(), 42, "second")
	require.NoError(t, err)

	// the second turn sees the first exchange as context
	require.Len(t, provider.seenHistory, 2)
	assert.Equal(t, "user", provider.seenHistory[0].Role)
	assert.Equal(t, "first", provider.seenHistory[0].Content)
	assert.Equal(t, "assistant", provider.seenHistory[1].Role)
}

func TestReply_PersistsExtractedReminder(t *testing.T) {
	reminders := &fakeReminderRepo{}
	scheduled := time.Now().Add(24 * time.Hour)
	provider := &fakeLLMProvider{
		reply:    "I'll remind you.",
		reminder: &ExtractedReminder{Content: "Take medication", ScheduledTime: scheduled},
	}
	svc := NewAssistantService(&fakeMessageRepo{}, reminders, provider)

	_, err := svc.Reply(context.Background(), 42, "remind me to take my medication tomorrow")
	require.NoError(t, err)

	require.Len(t, reminders.created, 1)
	assert.Equal(t, "Take medication", reminders.created[0].Content)
	assert.True(t, reminders.created[0].AIGenerated)
	assert.Equal(t, reminderModels.ReminderStatusPending, reminders.created[0].Status)
}

func TestReply_ExtractionFailureIsNonFatal(t *testing.T) {
	provider := &fakeLLMProvider{reply: "done", reminderErr: errors.New("llm hiccup")}
	svc := NewAssistantService(&fakeMessageRepo{}, &fakeReminderRepo{}, provider)

	reply, err := svc.Reply(context.Background(), 42, "hello")
	require.NoError(t, err)
	assert.Equal(t, "done", reply)
}

func TestReply_ProviderFailure(t *testing.T) {
	provider := &fakeLLMProvider{replyErr: errors.New("rate limited")}
	svc := NewAssistantService(&fakeMessageRepo{}, &fakeReminderRepo{}, provider)

	_, err := svc.Reply(context.Background(), 42, "hello")
	assert.Error(t, err)
}
