package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pokevault/internal/auth"
	apperrors "pokevault/internal/errors"
	"pokevault/internal/model"
	"pokevault/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login. Both return the persisted user
// (password hash never serialized) plus a signed token.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a bcrypt-hashed password and issues a
// token. Emails are matched case-insensitively; a duplicate registration
// fails without touching the existing record.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrDuplicateIdentity
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrDuplicateIdentity
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and issues a token. Unknown email and wrong
// password collapse into the same generic error so callers cannot probe
// which emails are registered.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// bcrypt's comparison is constant-time with respect to the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
