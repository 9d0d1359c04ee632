package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// ActivityEnqueuer hands interaction events to the async audit pipeline.
type ActivityEnqueuer interface {
	Enqueue(event domain.ActivityEvent)
}

// FeedService implements the post feed use cases.
type FeedService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	activity ActivityEnqueuer
	delay    time.Duration
	logger   zerolog.Logger
}

func NewFeedService(posts ports.PostRepository, users ports.UserRepository, activity ActivityEnqueuer, delay time.Duration, logger zerolog.Logger) *FeedService {
	return &FeedService{
		posts:    posts,
		users:    users,
		activity: activity,
		delay:    delay,
		logger:   logger,
	}
}

// ListPosts returns the feed ordered by creation time descending (newest
// first), with the liked flag computed for the viewer. Visibility is not
// enforced: every authenticated viewer sees all posts.
// TODO: enforce friends/private visibility once a friend graph exists.
func (s *FeedService) ListPosts(ctx context.Context, input ports.ListPostsInput) ([]*domain.Post, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	filter := ports.ListPostsFilter{Search: strings.TrimSpace(input.Search)}
	if input.Mine {
		filter.UserID = input.ViewerID
	}

	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		p.IsLikedByCurrentUser = p.LikedByUser(input.ViewerID)
	}
	return posts, nil
}

// CreatePost builds a post from the draft, assigns a fresh identifier and
// the current timestamp, embeds the author snapshot, and persists it. A
// blank title falls back to "Untitled"; the transport layer already rejects
// blank titles, so the fallback only matters for direct service callers.
func (s *FeedService) CreatePost(ctx context.Context, input ports.CreatePostInput, authorID string) (*domain.Post, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled"
	}

	visibility := domain.Visibility(input.Visibility)
	if !visibility.Valid() {
		visibility = domain.VisibilityPublic
	}

	attachments := make([]domain.Attachment, 0, len(input.Attachments))
	for _, a := range input.Attachments {
		attachments = append(attachments, domain.Attachment{
			ID:       newID("a"),
			Kind:     domain.AttachmentKind(a.Kind),
			URL:      a.URL,
			Filename: a.Filename,
		})
	}

	post := &domain.Post{
		ID:          newID("p"),
		UserID:      author.ID,
		User:        author.Snapshot(),
		Title:       title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		EventDate:   input.EventDate,
		Attachments: attachments,
		Visibility:  visibility,
		Likes:       0,
		LikedBy:     []string{},
		Comments:    []domain.Comment{},
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("user_id", authorID).Msg("failed to create post")
		return nil, err
	}

	s.activity.Enqueue(domain.ActivityEvent{
		Kind:      domain.ActivityPostCreated,
		PostID:    post.ID,
		ActorID:   author.ID,
		Timestamp: post.CreatedAt,
	})

	s.logger.Info().Str("post_id", post.ID).Str("user_id", author.ID).Msg("post created")
	return post, nil
}

// DeletePost removes the post if the actor owns it (admins may delete any
// post). Deleting an unknown ID succeeds silently so the operation stays
// idempotent.
func (s *FeedService) DeletePost(ctx context.Context, postID, actorID, actorRole string) error {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if err == domain.ErrPostNotFound {
			return nil
		}
		return err
	}

	if post.UserID != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	deleted, err := s.posts.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if deleted {
		s.activity.Enqueue(domain.ActivityEvent{
			Kind:      domain.ActivityPostDeleted,
			PostID:    postID,
			ActorID:   actorID,
			Timestamp: time.Now().UTC(),
		})
		s.logger.Info().Str("post_id", postID).Str("user_id", actorID).Msg("post deleted")
	}
	return nil
}

// ToggleLike flips the viewer's membership in the post's like set and
// adjusts the counter by exactly one; both happen in a single atomic update
// so flag and count never drift. Calling it twice restores the original
// state. Like toggles use half the simulated delay, matching the snappier
// interaction of the original client.
func (s *FeedService) ToggleLike(ctx context.Context, postID, viewerID string) (*domain.Post, error) {
	if err := simulateLatency(ctx, s.delay/2); err != nil {
		return nil, err
	}

	post, err := s.posts.ToggleLike(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}

	post.IsLikedByCurrentUser = post.LikedByUser(viewerID)

	kind := domain.ActivityLikeRemoved
	if post.IsLikedByCurrentUser {
		kind = domain.ActivityLikeAdded
	}
	s.activity.Enqueue(domain.ActivityEvent{
		Kind:      kind,
		PostID:    postID,
		ActorID:   viewerID,
		Timestamp: time.Now().UTC(),
	})

	return post, nil
}

// AddComment appends a comment with the author's denormalized name and
// avatar. Comments are append-only: there is no edit or delete.
func (s *FeedService) AddComment(ctx context.Context, postID, authorID, content string) (*domain.Post, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:         newID("c"),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	post, err := s.posts.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	post.IsLikedByCurrentUser = post.LikedByUser(authorID)

	s.activity.Enqueue(domain.ActivityEvent{
		Kind:      domain.ActivityCommentAdded,
		PostID:    postID,
		ActorID:   authorID,
		Timestamp: comment.CreatedAt,
	})

	return post, nil
}
