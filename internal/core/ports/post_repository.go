package ports

import (
	"context"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// ListPostsFilter carries the query parameters for listing the feed.
// The feed is always returned newest-first; there is deliberately no
// pagination (the service returns the full feed).
type ListPostsFilter struct {
	Search string // optional: partial match on title, description, or author name
	UserID string // optional: only posts owned by this user
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts matching filter, ordered by creation time descending.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	// Delete removes a post by ID. Deleting an absent ID is not an error;
	// the boolean reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	// ToggleLike atomically flips userID's membership in the post's like set
	// and adjusts the like counter by exactly one in the same update, then
	// returns the resulting post. Returns domain.ErrPostNotFound when the
	// post does not exist.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	// AddComment appends a comment to the post and returns the resulting
	// post. Returns domain.ErrPostNotFound when the post does not exist.
	AddComment(ctx context.Context, postID string, comment domain.Comment) (*domain.Post, error)
}
