package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokevault/internal/cache"
	apperrors "pokevault/internal/errors"
	"pokevault/internal/model"
	"pokevault/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// UserService exposes profile lookups for authenticated users.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// GetProfile returns the sanitized user record, served from cache when warm.
// The cached JSON never contains the password hash.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return user, nil
}
