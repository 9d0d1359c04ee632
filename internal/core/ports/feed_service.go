package ports

import (
	"context"
	"time"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// AttachmentInput carries one attachment reference on a post draft.
type AttachmentInput struct {
	Kind     string
	URL      string
	Filename string
}

// CreatePostInput is a post draft: user-submitted data awaiting identifier
// and timestamp assignment.
type CreatePostInput struct {
	Title       string
	Description string
	EventDate   *time.Time // optional, user-supplied; distinct from creation time
	Attachments []AttachmentInput
	Visibility  string
}

// ListPostsInput carries the parameters for reading the feed.
type ListPostsInput struct {
	ViewerID string // used to compute the per-viewer liked flag
	Search   string // optional feed search text
	Mine     bool   // only the viewer's own posts
}

// FeedService defines use-case operations on the post feed.
type FeedService interface {
	ListPosts(ctx context.Context, input ListPostsInput) ([]*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput, authorID string) (*domain.Post, error)
	// DeletePost removes a post owned by the actor (admins may delete any).
	// Deleting an unknown post ID is a silent no-op.
	DeletePost(ctx context.Context, postID, actorID, actorRole string) error
	ToggleLike(ctx context.Context, postID, viewerID string) (*domain.Post, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*domain.Post, error)
}
