package ports

import (
	"context"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// ActivityRepository persists the append-only interaction audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// ListByPost returns the most recent events for a post, newest first.
	ListByPost(ctx context.Context, postID string, limit int) ([]*domain.ActivityEvent, error)
}

// ActivityService processes activity events dequeued by the dispatcher.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}
