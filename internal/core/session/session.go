// Package session holds the server-side replacement for the original
// client's ambient auth context: an explicit manager that persists the
// current-user snapshot in a key-value store and is injected into whatever
// needs it, instead of global mutable state.
package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// Store is the persistent key-value adapter the manager writes through.
// Implementations serialize values as JSON; Read fills dest with the stored
// value or returns domain.ErrNotFound for absent keys and
// domain.ErrCorruptState for values that no longer deserialize.
type Store interface {
	Read(ctx context.Context, key string, dest any) error
	Write(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Manager owns the current-user snapshot for each authenticated caller.
// Current → authenticated (snapshot returned) or anonymous
// (domain.ErrNotFound); there is no transient loading state server-side.
type Manager struct {
	store Store
	ttl   time.Duration
	log   zerolog.Logger
}

func NewManager(store Store, ttl time.Duration, log zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, ttl: ttl, log: log}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// Current returns the persisted snapshot for userID, or domain.ErrNotFound
// when the caller is anonymous.
func (m *Manager) Current(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := m.store.Read(ctx, sessionKey(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login persists the snapshot, moving the caller to authenticated.
func (m *Manager) Login(ctx context.Context, user *domain.User) error {
	snapshot := user.Snapshot()
	return m.store.Write(ctx, sessionKey(user.ID), &snapshot, m.ttl)
}

// UpdateUser replaces the stored identity after a profile change.
func (m *Manager) UpdateUser(ctx context.Context, user *domain.User) error {
	snapshot := user.Snapshot()
	return m.store.Write(ctx, sessionKey(user.ID), &snapshot, m.ttl)
}

// Logout clears the persisted snapshot, moving the caller to anonymous.
// Logging out twice is harmless.
func (m *Manager) Logout(ctx context.Context, userID string) error {
	return m.store.Delete(ctx, sessionKey(userID))
}
