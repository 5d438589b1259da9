package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmcvie/minifeed/internal/domain"
)

const (
	maxBioLength     = 500
	defaultUserLimit = 20
	maxUserLimit     = 100
)

// UserService exposes read-only profile lookups and profile updates.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns a user's public profile.
func (s *UserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile changes a user's display name and biography. Name follows
// the same rule as registration; bio is free text up to maxBioLength.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, bio string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	bio = strings.TrimSpace(bio)

	if utf8.RuneCountInString(name) < minNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", domain.ErrInvalidInput, minNameLength)
	}
	if utf8.RuneCountInString(bio) > maxBioLength {
		return nil, fmt.Errorf("%w: bio cannot exceed %d characters", domain.ErrInvalidInput, maxBioLength)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = bio
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ListUsers returns up to limit users, newest first, optionally filtered by
// a case-insensitive substring match on name or email.
func (s *UserService) ListUsers(ctx context.Context, search string, limit int) ([]domain.User, error) {
	if limit < 1 {
		limit = defaultUserLimit
	}
	if limit > maxUserLimit {
		limit = maxUserLimit
	}
	return s.users.List(ctx, strings.TrimSpace(search), limit)
}
