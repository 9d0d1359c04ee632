package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

type stubActivityRepo struct {
	inserted  []*domain.ActivityEvent
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubActivityRepo) ListByPost(_ context.Context, postID string, _ int) ([]*domain.ActivityEvent, error) {
	var out []*domain.ActivityEvent
	for _, e := range r.inserted {
		if e.PostID == postID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubDedup struct {
	duplicate bool
	checkErr  error
	marked    []domain.ActivityEvent
	markErr   error
}

func (d *stubDedup) IsDuplicate(_ context.Context, _ domain.ActivityEvent) (bool, error) {
	return d.duplicate, d.checkErr
}

func (d *stubDedup) Mark(_ context.Context, event domain.ActivityEvent) error {
	d.marked = append(d.marked, event)
	return d.markErr
}

func sampleEvent() domain.ActivityEvent {
	return domain.ActivityEvent{
		Kind:      domain.ActivityLikeAdded,
		PostID:    "p-1",
		ActorID:   "u-1",
		Timestamp: time.Now().UTC(),
	}
}

func TestActivityService_Process_PersistsEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 inserted event, got %d", len(repo.inserted))
	}
	if len(dedup.marked) != 1 {
		t.Errorf("expected the event to be marked, got %d marks", len(dedup.marked))
	}
}

func TestActivityService_Process_SkipsDuplicates(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{duplicate: true}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("duplicates must be dropped silently, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("duplicate must not be inserted, got %d events", len(repo.inserted))
	}
}

func TestActivityService_Process_DedupFailureProcessesAnyway(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{checkErr: errors.New("redis down")}
	svc := NewActivityService(repo, dedup, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("dedup failure must not block processing, got %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Errorf("expected 1 inserted event, got %d", len(repo.inserted))
	}
}

func TestActivityService_Process_InsertErrorPropagates(t *testing.T) {
	wantErr := errors.New("mongo down")
	repo := &stubActivityRepo{insertErr: wantErr}
	svc := NewActivityService(repo, &stubDedup{}, discardLogger)

	err := svc.Process(context.Background(), sampleEvent())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func TestActivityService_Process_FillsMissingTimestamp(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, &stubDedup{}, discardLogger)

	event := sampleEvent()
	event.Timestamp = time.Time{}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted[0].Timestamp.IsZero() {
		t.Error("timestamp must be filled in before persisting")
	}
}
