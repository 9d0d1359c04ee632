package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// SessionRefresher replaces the persisted current-user snapshot after a
// profile change so the session never serves stale identity data.
type SessionRefresher interface {
	UpdateUser(ctx context.Context, user *domain.User) error
}

// ProfileService implements reading and partially updating user profiles.
type ProfileService struct {
	users    ports.UserRepository
	sessions SessionRefresher
	delay    time.Duration
	logger   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, sessions SessionRefresher, delay time.Duration, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, sessions: sessions, delay: delay, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// Update merges the non-nil fields into the user, persists the result, and
// cascades the refreshed snapshot into every post the user owns. The user
// write and the post cascade run in the same transaction (see
// UserRepository.UpdateAndSyncPosts), so no post can be observed with a
// stale author snapshot.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != user.Email {
			if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing.ID != user.ID {
				return nil, domain.ErrEmailTaken
			}
			user.Email = email
		}
	}

	updated, err := s.users.UpdateAndSyncPosts(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update profile")
		return nil, err
	}

	if err := s.sessions.UpdateUser(ctx, updated); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to refresh session snapshot")
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}
