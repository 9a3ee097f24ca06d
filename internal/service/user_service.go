package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"corpdesk/internal/cache"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateProfileInput carries optional profile fields; nil means unchanged.
type UpdateProfileInput struct {
	FullName *string
	Gender   *string
	MobileNo *string
}

// UserService exposes profile operations for the authenticated user.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*model.User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetProfile retrieves a user by ID with caching.
func (s *userService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(userID), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateProfile applies the provided fields. A mobile number that belongs to
// another user is rejected; the unique constraint backstops the check.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*model.User, error) {
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Gender != nil {
		updates["gender"] = *input.Gender
	}
	if input.MobileNo != nil {
		if existing, err := s.repo.FindByMobile(ctx, *input.MobileNo); err == nil && existing != nil && existing.ID != userID {
			return nil, apperrors.ErrMobileTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check mobile existence: %w", err)
		}
		updates["mobile_no"] = *input.MobileNo
	}

	if len(updates) == 0 {
		return s.GetProfile(ctx, userID)
	}

	user, err := s.repo.Update(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if column, ok := repository.UniqueViolationColumn(err); ok && column == "mobile_no" {
			return nil, apperrors.ErrMobileTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(userID))
	return user, nil
}

// DeleteAccount removes the user record.
func (s *userService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(userID))
	return nil
}
