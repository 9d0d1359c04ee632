package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (s *recordingService) Process(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingService) snapshot() []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ActivityEvent(nil), s.events...)
}

func waitForEvents(t *testing.T, svc *recordingService, want int) []domain.ActivityEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := svc.snapshot(); len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", want, len(svc.snapshot()))
	return nil
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Enqueue(domain.ActivityEvent{
			Kind:    domain.ActivityLikeAdded,
			PostID:  fmt.Sprintf("p-%d", i),
			ActorID: "u-1",
		})
	}

	events := waitForEvents(t, svc, 5)
	if len(events) != 5 {
		t.Fatalf("expected 5 processed events, got %d", len(events))
	}
}

func TestDispatcher_ShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	for _, postID := range []string{"p-1", "p-2", "p-SEED0001"} {
		first := d.shardIndex(postID)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(postID); got != first {
				t.Fatalf("shard for %q changed: %d then %d", postID, first, got)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard %d out of range for %q", first, postID)
		}
	}
}

func TestDispatcher_PreservesPerPostOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	const total = 20
	base := time.Now().UTC()
	for i := 0; i < total; i++ {
		d.Enqueue(domain.ActivityEvent{
			Kind:      domain.ActivityCommentAdded,
			PostID:    "p-1",
			ActorID:   fmt.Sprintf("u-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Millisecond),
		})
	}

	events := waitForEvents(t, svc, total)
	for i := 1; i < total; i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("events for the same post processed out of order at %d", i)
		}
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.ActivityEvent{Kind: domain.ActivityPostCreated, PostID: "p-1"})
	waitForEvents(t, svc, 1)

	cancel()
	time.Sleep(20 * time.Millisecond)

	// After cancellation workers are gone; the buffered channel still
	// accepts the event but nothing drains it.
	d.Enqueue(domain.ActivityEvent{Kind: domain.ActivityPostCreated, PostID: "p-1"})
	time.Sleep(50 * time.Millisecond)
	if got := len(svc.snapshot()); got != 1 {
		t.Fatalf("no processing expected after cancel, got %d events", got)
	}
}
