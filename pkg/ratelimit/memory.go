package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry tracks request count for a key in the current window
type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is the default single-instance Store: a mutex-guarded map.
// State lives only in process memory; losing it on restart is acceptable
// because the limiter is an abuse heuristic, not a billing-grade counter.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
	go s.janitor(5 * time.Minute)
	return s
}

// Incr implements Store with a check-then-increment under the lock, so
// concurrent requests from the same client never undercount.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt, nil
}

// janitor periodically drops entries whose window has passed so idle keys
// do not accumulate forever.
func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := s.now()
		s.mu.Lock()
		for key, entry := range s.entries {
			if now.After(entry.resetAt) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}
