package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService handles user management business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Create inserts a new user with a hashed password.
func (s *UserService) Create(input RegisterInput) (*models.User, error) {
	taken, err := s.userRepo.EmailTaken(input.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: string(hashed),
		Avatar:   input.AvatarPath,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update replaces name, phone, email and password on the user. The password
// is rehashed from the submitted value on every call, even when it matches
// the current one, so each update invalidates the old hash. The avatar is
// replaced only when a new path is supplied.
func (s *UserService) Update(id uint64, input RegisterInput) (*models.User, error) {
	taken, err := s.userRepo.EmailTaken(input.Email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user.Name = input.Name
	user.Phone = input.Phone
	user.Email = input.Email
	user.Password = string(hashed)
	if input.AvatarPath != nil {
		user.Avatar = input.AvatarPath
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user by ID. Any caller may delete any user.
func (s *UserService) Delete(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
