package ports

import (
	"context"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateAndSyncPosts persists the updated user and refreshes the
	// denormalized author snapshot on every post the user owns. Both writes
	// happen in the same transaction so the snapshot can never lag behind
	// the profile.
	UpdateAndSyncPosts(ctx context.Context, user *domain.User) (*domain.User, error)
}
