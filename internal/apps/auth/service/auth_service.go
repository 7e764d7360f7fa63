package service

import (
	"errors"
	"fmt"

	"second-brain-api/internal/apps/auth/repository"
	userModels "second-brain-api/internal/apps/user/models"
	userRepository "second-brain-api/internal/apps/user/repository"
	"second-brain-api/pkg/phone"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCode is returned when the provider rejects a one-time code.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrInvalidRefreshToken covers malformed, expired, wrong-type and
	// revoked (no longer stored) refresh tokens alike.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrUserNotFound is returned when no user exists for a phone number.
	ErrUserNotFound = errors.New("user not found")
)

// VerifyCodeResult is returned after a successful code check
type VerifyCodeResult struct {
	User         *userModels.User
	AccessToken  string
	RefreshToken string
}

// AuthService orchestrates phone verification, user creation and session issuance
type AuthService interface {
	SendVerification(phoneNumber string) (string, error)
	VerifyCode(phoneNumber, code string) (*VerifyCodeResult, error)
	RefreshAccessToken(refreshToken string) (string, error)
}

// authService implements AuthService
type authService struct {
	userRepo userRepository.UserRepository
	authRepo repository.AuthRepository
	tokens   TokenService
	provider VerifyProvider
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo userRepository.UserRepository,
	authRepo repository.AuthRepository,
	tokens TokenService,
	provider VerifyProvider,
) AuthService {
	return &authService{
		userRepo: userRepo,
		authRepo: authRepo,
		tokens:   tokens,
		provider: provider,
	}
}

// SendVerification starts phone verification: the provider delivers a code
// and the pending verification id is stored, creating the user on first sight
// of the phone number.
func (s *authService) SendVerification(phoneNumber string) (string, error) {
	formatted := phone.Normalize(phoneNumber)

	verificationID, err := s.provider.SendCode(formatted)
	if err != nil {
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}

	user, err := s.userRepo.FindByPhoneNumber(formatted)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		user = &userModels.User{PhoneNumber: formatted}
		if err := s.userRepo.Create(user); err != nil {
			return "", err
		}
	}

	if err := s.authRepo.Upsert(user.ID, &verificationID, nil); err != nil {
		return "", err
	}

	return verificationID, nil
}

// VerifyCode checks the code with the provider and, on approval, issues a
// token pair and stores the refresh token. The stored token is overwritten,
// so only the latest session's refresh token remains valid.
func (s *authService) VerifyCode(phoneNumber, code string) (*VerifyCodeResult, error) {
	formatted := phone.Normalize(phoneNumber)

	approved, err := s.provider.CheckCode(formatted, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check verification code: %w", err)
	}
	if !approved {
		return nil, ErrInvalidCode
	}

	user, err := s.userRepo.FindByPhoneNumber(formatted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.authRepo.Upsert(user.ID, nil, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &VerifyCodeResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// RefreshAccessToken exchanges a stored refresh token for a new access token.
// The refresh token is not rotated; overwriting or deleting the stored value
// revokes it.
func (s *authService) RefreshAccessToken(refreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if _, err := s.authRepo.FindByRefreshToken(refreshToken); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	return s.tokens.IssueAccessToken(userID)
}
