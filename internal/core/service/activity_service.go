package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). The activity
// pipeline delivers at-least-once; the dedup layer keeps replays out of the
// audit trail.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, event domain.ActivityEvent) (bool, error)
	Mark(ctx context.Context, event domain.ActivityEvent) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	isDup, err := s.dedup.IsDuplicate(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).Str("post_id", event.PostID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("post_id", event.PostID).Str("kind", string(event.Kind)).Msg("duplicate activity skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, event); markErr != nil {
		s.log.Warn().Err(markErr).Str("post_id", event.PostID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Info().
		Str("post_id", event.PostID).
		Str("actor_id", event.ActorID).
		Str("kind", string(event.Kind)).
		Msg("activity recorded")

	return nil
}
