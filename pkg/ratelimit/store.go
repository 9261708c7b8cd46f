// Package ratelimit provides a fixed-window request counter behind a small
// Store interface so the backing state can be swapped (in-process map for a
// single instance, Redis for multi-instance) without touching calling code.
package ratelimit

import (
	"context"
	"time"
)

// Store counts requests per key in fixed windows. Incr increments the
// counter for key, starting a fresh window when none is active, and returns
// the post-increment count together with the moment the window resets.
// Callers compare the count against their limit; the store itself never
// rejects anything.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}
