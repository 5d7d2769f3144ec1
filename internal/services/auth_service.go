package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
	"github.com/adiprasetyo/task-tracker-api/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("email already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login and token revocation.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// RegisterInput holds the validated fields for a new account. AvatarPath is
// the already-stored relative path, nil when no file was uploaded.
type RegisterInput struct {
	Name       string
	Phone      string
	Email      string
	Password   string
	AvatarPath *string
}

// Register hashes the password and inserts the user. The uniqueness check
// runs before the insert so a duplicate email never writes a row.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
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

// Login verifies credentials and issues a fresh opaque token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	plaintext, err := utils.GenerateToken()
	if err != nil {
		return nil, "", ErrFailedToIssueToken
	}

	token := &models.PersonalToken{
		UserID:    user.ID,
		TokenHash: utils.HashToken(plaintext),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, "", ErrFailedToIssueToken
	}

	return user, plaintext, nil
}

// Logout revokes every token the user owns, ending all of their sessions.
func (s *AuthService) Logout(userID uint64) error {
	if err := s.tokenRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}
