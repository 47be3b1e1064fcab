package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounter is the default in-process backend, used when the
// storage URI is memory://. Counts are lost on restart, which is fine
// for a single-instance deployment.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.expiresAt.After(now) {
		e = memoryEntry{expiresAt: now.Add(window)}
	}
	e.count++
	c.entries[key] = e

	if len(c.entries) > 1 && len(c.entries)%4096 == 0 {
		c.sweepLocked(now)
	}

	return e.count, nil
}

func (c *MemoryCounter) sweepLocked(now time.Time) {
	for key, e := range c.entries {
		if !e.expiresAt.After(now) {
			delete(c.entries, key)
		}
	}
}
