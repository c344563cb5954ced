package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "lawnly/database/repository/user"
	"lawnly/models"
	"lawnly/utils"

	"golang.org/x/crypto/bcrypt"
)

// Token lifetime for customer and admin sessions.
const TokenDuration = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput carries the signup fields.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// AuthResult is a successful register or login: the user plus a fresh JWT.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Service manages accounts and authentication.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	ListCustomers(ctx context.Context) ([]models.User, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Users userRepo.UserRepository
}

// Register creates a customer account and signs them in.
func (s *DefaultService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, models.Invalid("a valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, models.Invalid("password must be at least 8 characters")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, models.Invalid("first name is required")
	}

	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.issueToken(ctx, user)
}

// Login verifies credentials and issues a fresh token.
func (s *DefaultService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

// Logout invalidates the stored token hash so the outstanding JWT no longer
// passes the middleware's hash check.
func (s *DefaultService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.SetTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// GetProfile returns the account.
func (s *DefaultService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile edits display fields; email and role are immutable here.
func (s *DefaultService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(update.FirstName); name != "" {
		user.FirstName = name
	}
	if name := strings.TrimSpace(update.LastName); name != "" {
		user.LastName = name
	}
	if phone := strings.TrimSpace(update.Phone); phone != "" {
		user.Phone = phone
	}

	if err := s.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the account record.
func (s *DefaultService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListCustomers returns every customer account for the admin directory.
func (s *DefaultService) ListCustomers(ctx context.Context) ([]models.User, error) {
	customers, err := s.Users.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *DefaultService) issueToken(ctx context.Context, user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.Users.SetTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	user.TokenHash = utils.HashToken(token)
	return &AuthResult{User: *user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
