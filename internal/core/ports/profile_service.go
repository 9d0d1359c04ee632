package ports

import (
	"context"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// UpdateProfileInput is a partial profile update; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Bio    *string
	Avatar *string
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Update merges the partial update into the user, persists it, and
	// cascades the refreshed snapshot into every post the user owns.
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
