package service

import (
	"errors"
	"fmt"
	"time"

	"second-brain-api/internal/apps/call/models"
	"second-brain-api/internal/apps/call/repository"
	userRepository "second-brain-api/internal/apps/user/repository"
	"second-brain-api/pkg/phone"

	"gorm.io/gorm"
)

// CallService defines the interface for voice call business logic
type CallService interface {
	VoiceToken(userID uint) (string, error)
	OutgoingCall(userID uint, phoneNumber string) (*models.OutgoingCallResponse, error)
	IncomingCall(from, to, callSID string) (string, error)
	CallTwiML(userIdentity string) (string, error)
	StatusCallback(callSID, callStatus string, duration *int) error
	History(userID uint) ([]models.CallResponse, error)
}

// callService implements CallService
type callService struct {
	repo     repository.CallRepository
	userRepo userRepository.UserRepository
	provider VoiceProvider
	appURL   string
}

// NewCallService creates a new instance of CallService
func NewCallService(
	repo repository.CallRepository,
	userRepo userRepository.UserRepository,
	provider VoiceProvider,
	appURL string,
) CallService {
	return &callService{
		repo:     repo,
		userRepo: userRepo,
		provider: provider,
		appURL:   appURL,
	}
}

// VoiceToken issues a client SDK token with the user id as identity
func (s *callService) VoiceToken(userID uint) (string, error) {
	identity := fmt.Sprintf("user-%d", userID)
	return s.provider.AccessToken(identity)
}

// OutgoingCall places a call from the service number to the given phone
// number and records it
func (s *callService) OutgoingCall(userID uint, phoneNumber string) (*models.OutgoingCallResponse, error) {
	formatted := phone.Normalize(phoneNumber)
	twimlURL := fmt.Sprintf("%s/api/calls/twiml/%d", s.appURL, userID)

	result, err := s.provider.MakeCall(formatted, twimlURL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	call := &models.Call{
		UserID:          userID,
		ProviderCallSID: &result.SID,
		Status:          result.Status,
		Type:            models.CallTypeOutgoing,
		StartedAt:       &now,
	}
	if err := s.repo.Create(call); err != nil {
		return nil, err
	}

	return &models.OutgoingCallResponse{
		Success: true,
		CallSID: result.SID,
		Status:  result.Status,
	}, nil
}

// IncomingCall records an inbound call when the caller is a known user and
// returns the call-control document connecting it to the assistant stream
func (s *callService) IncomingCall(from, to, callSID string) (string, error) {
	streamIdentity := "anonymous"

	user, err := s.userRepo.FindByPhoneNumber(phone.Normalize(from))
	if err == nil {
		streamIdentity = fmt.Sprintf("%d", user.ID)

		now := time.Now()
		call := &models.Call{
			UserID:          user.ID,
			ProviderCallSID: &callSID,
			Status:          models.CallStatusRinging,
			Type:            models.CallTypeIncoming,
			StartedAt:       &now,
		}
		if err := s.repo.Create(call); err != nil {
			return "", err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	streamURL := fmt.Sprintf("%s/api/calls/openai-stream/%s", s.appURL, streamIdentity)
	return s.provider.ConnectTwiML(streamURL)
}

// CallTwiML returns the call-control document Twilio fetches when an
// outgoing call is answered, connecting it to the assistant stream for
// the given identity
func (s *callService) CallTwiML(userIdentity string) (string, error) {
	streamURL := fmt.Sprintf("%s/api/calls/openai-stream/%s", s.appURL, userIdentity)
	return s.provider.ConnectTwiML(streamURL)
}

// StatusCallback applies a provider status update to the matching call
// record. Terminal records are immutable; unknown SIDs are ignored.
func (s *callService) StatusCallback(callSID, callStatus string, duration *int) error {
	call, err := s.repo.FindByCallSID(callSID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if models.IsTerminalStatus(call.Status) {
		return nil
	}

	update := repository.CallUpdate{
		Status:   &callStatus,
		Duration: duration,
	}
	if models.IsTerminalStatus(callStatus) {
		now := time.Now()
		update.EndedAt = &now
	}
	return s.repo.Update(call.ID, update)
}

// History returns the user's calls, newest first
func (s *callService) History(userID uint) ([]models.CallResponse, error) {
	calls, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CallResponse, 0, len(calls))
	for i := range calls {
		responses = append(responses, calls[i].ToResponse())
	}
	return responses, nil
}
