package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingCounter struct{}

func (failingCounter) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("backend down")
}

func TestLimiter_AllowsUnderLimit(t *testing.T) {
	t.Parallel()

	limiter := New(NewMemoryCounter(), []Limit{{Count: 3, Window: time.Hour, Name: "hour"}})

	for i := 0; i < 3; i++ {
		decision, err := limiter.Allow(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestLimiter_DeniesOverLimit(t *testing.T) {
	t.Parallel()

	limiter := New(NewMemoryCounter(), []Limit{{Count: 2, Window: time.Hour, Name: "hour"}})
	// Pin time away from a window boundary so all hits land in one bucket.
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	for i := 0; i < 2; i++ {
		if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); !decision.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	decision, err := limiter.Allow(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("third request should be denied")
	}
	if decision.Limited.Name != "hour" {
		t.Fatalf("unexpected limiting rule: %q", decision.Limited.Name)
	}
	if decision.RetryAfter <= 0 || decision.RetryAfter > time.Hour {
		t.Fatalf("unexpected retry after: %s", decision.RetryAfter)
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := New(NewMemoryCounter(), []Limit{{Count: 1, Window: time.Hour, Name: "hour"}})
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); !decision.Allowed {
		t.Fatalf("first client should be allowed")
	}
	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); decision.Allowed {
		t.Fatalf("first client should now be denied")
	}
	if decision, _ := limiter.Allow(context.Background(), "10.0.0.2"); !decision.Allowed {
		t.Fatalf("second client should be unaffected")
	}
}

func TestLimiter_WindowRollsOver(t *testing.T) {
	t.Parallel()

	current := time.Unix(1_700_000_000, 0)
	limiter := New(NewMemoryCounter(), []Limit{{Count: 1, Window: time.Second, Name: "second"}})
	limiter.now = func() time.Time { return current }

	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); !decision.Allowed {
		t.Fatalf("first request should be allowed")
	}
	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); decision.Allowed {
		t.Fatalf("second request in same window should be denied")
	}

	current = current.Add(time.Second)

	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); !decision.Allowed {
		t.Fatalf("request in the next window should be allowed")
	}
}

func TestLimiter_StricterRuleWins(t *testing.T) {
	t.Parallel()

	limiter := New(NewMemoryCounter(), []Limit{
		{Count: 1, Window: time.Second, Name: "second"},
		{Count: 100, Window: time.Hour, Name: "hour"},
	})
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	if decision, _ := limiter.Allow(context.Background(), "10.0.0.1"); !decision.Allowed {
		t.Fatalf("first request should be allowed")
	}

	decision, err := limiter.Allow(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("second request should be denied by the per-second rule")
	}
	if decision.Limited.Name != "second" {
		t.Fatalf("unexpected limiting rule: %q", decision.Limited.Name)
	}
}

func TestLimiter_BackendErrorPropagates(t *testing.T) {
	t.Parallel()

	limiter := New(failingCounter{}, []Limit{{Count: 1, Window: time.Hour, Name: "hour"}})

	if _, err := limiter.Allow(context.Background(), "10.0.0.1"); err == nil {
		t.Fatalf("expected backend error to propagate")
	}
}
