package ratelimit

import (
	"testing"
	"time"
)

func TestParsePolicy_MultipleRules(t *testing.T) {
	t.Parallel()

	limits, err := ParsePolicy("200/day, 50/hour")
	if err != nil {
		t.Fatalf("parse policy: %v", err)
	}
	if len(limits) != 2 {
		t.Fatalf("expected 2 limits, got %d", len(limits))
	}
	if limits[0].Count != 200 || limits[0].Window != 24*time.Hour || limits[0].Name != "day" {
		t.Fatalf("unexpected first limit: %+v", limits[0])
	}
	if limits[1].Count != 50 || limits[1].Window != time.Hour || limits[1].Name != "hour" {
		t.Fatalf("unexpected second limit: %+v", limits[1])
	}
}

func TestParsePolicy_SingleRule(t *testing.T) {
	t.Parallel()

	limits, err := ParsePolicy("1/second")
	if err != nil {
		t.Fatalf("parse policy: %v", err)
	}
	if len(limits) != 1 || limits[0].Count != 1 || limits[0].Window != time.Second {
		t.Fatalf("unexpected limits: %+v", limits)
	}
}

func TestParsePolicy_Rejections(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "50", "abc/hour", "0/hour", "-3/day", "10/fortnight"} {
		if _, err := ParsePolicy(raw); err == nil {
			t.Fatalf("expected error for policy %q", raw)
		}
	}
}
