package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"
)

// simulateLatency blocks for d before the operation touches storage,
// mirroring the artificial network delay of the client-side original. A zero
// or negative d (the production default) returns immediately. The sleep is
// context-aware so callers can still cancel.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// newID returns an identifier in the format <prefix>-XXXXXXXX.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08X", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08X", prefix, b)
}
