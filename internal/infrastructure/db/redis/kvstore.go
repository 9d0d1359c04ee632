package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// KVStore is a JSON key-value adapter over Redis: Read deserializes the
// stored value for a key, Write serializes and fully replaces it. There is
// no locking; concurrent writers race and the last write wins.
type KVStore struct {
	client *redis.Client
}

func NewKVStore(client *redis.Client) *KVStore {
	return &KVStore{client: client}
}

// Read fills dest with the value stored under key. Absent keys return
// domain.ErrNotFound so callers can substitute their default. A stored value
// that no longer deserializes returns domain.ErrCorruptState instead of
// failing opaquely.
func (s *KVStore) Read(ctx context.Context, key string, dest any) error {
	b, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("kvstore read %q: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("kvstore read %q: %w: %v", key, domain.ErrCorruptState, err)
	}
	return nil
}

// Write serializes value and stores it under key, replacing any prior
// content. A zero ttl stores the value without expiry.
func (s *KVStore) Write(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore write %q: %w", key, err)
	}
	if err := s.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("kvstore write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kvstore delete %q: %w", key, err)
	}
	return nil
}
