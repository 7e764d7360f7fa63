package service

import (
	"errors"
	"strings"

	"second-brain-api/internal/apps/user/models"
	"second-brain-api/internal/apps/user/repository"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserService defines the interface for user business logic
type UserService interface {
	GetUserByID(id uint) (*models.UserResponse, error)
	GetUserByPhoneNumber(phoneNumber string) (*models.UserResponse, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.UserResponse, error)
}

// userService implements UserService
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// GetUserByPhoneNumber retrieves a user by phone number
func (s *userService) GetUserByPhoneNumber(phoneNumber string) (*models.UserResponse, error) {
	user, err := s.repo.FindByPhoneNumber(phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdateUser applies a partial profile update, preserving unset fields
func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, errors.New("name cannot be empty")
		}
		user.Name = &trimmed
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
