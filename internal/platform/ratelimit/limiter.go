package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Counter tracks hits per key inside a fixed window. The window bucket
// is part of the key, so a counter only needs to increment and expire.
type Counter interface {
	// Incr adds one hit and returns the total for the current window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Decision reports whether a request may proceed and, when it may not,
// which limit stopped it and how long until the window rolls over.
type Decision struct {
	Allowed    bool
	Limited    Limit
	RetryAfter time.Duration
}

// Limiter applies a set of fixed-window limits against a shared
// counter backend. It is a load-shedding policy, not a correctness
// mechanism: callers are expected to fail open when the backend is
// unreachable.
type Limiter struct {
	counter Counter
	limits  []Limit
	now     func() time.Time
}

func New(counter Counter, limits []Limit) *Limiter {
	return &Limiter{
		counter: counter,
		limits:  limits,
		now:     time.Now,
	}
}

// Allow checks every limit for the client key. The first exceeded
// limit denies the request; backend errors propagate to the caller.
func (l *Limiter) Allow(ctx context.Context, clientKey string) (Decision, error) {
	now := l.now()
	for _, limit := range l.limits {
		bucket := now.Unix() / int64(limit.Window/time.Second)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", sanitizeKey(clientKey), limit.Name, bucket)

		total, err := l.counter.Incr(ctx, key, limit.Window)
		if err != nil {
			return Decision{}, fmt.Errorf("incr rate limit counter: %w", err)
		}
		if total > limit.Count {
			windowStart := time.Unix(bucket*int64(limit.Window/time.Second), 0)
			return Decision{
				Allowed:    false,
				Limited:    limit,
				RetryAfter: windowStart.Add(limit.Window).Sub(now),
			}, nil
		}
	}

	return Decision{Allowed: true}, nil
}

func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(key))
}
