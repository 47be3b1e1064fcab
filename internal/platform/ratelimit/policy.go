package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Limit is one fixed-window rule, e.g. 200 requests per day.
type Limit struct {
	Count  int64
	Window time.Duration
	Name   string
}

// ParsePolicy reads a comma separated policy string such as
// "200/day,50/hour" or "1/second" into a list of limits.
func ParsePolicy(raw string) ([]Limit, error) {
	parts := strings.Split(raw, ",")
	out := make([]Limit, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, "/", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid rate limit %q, expected count/window", item)
		}

		count, err := strconv.ParseInt(strings.TrimSpace(segments[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count in rate limit %q: %w", item, err)
		}
		if count <= 0 {
			return nil, fmt.Errorf("count must be > 0 in rate limit %q", item)
		}

		window, name, err := parseWindow(strings.TrimSpace(segments[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid window in rate limit %q: %w", item, err)
		}

		out = append(out, Limit{Count: count, Window: window, Name: name})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("rate limit policy %q has no rules", raw)
	}

	return out, nil
}

func parseWindow(raw string) (time.Duration, string, error) {
	switch strings.ToLower(raw) {
	case "second":
		return time.Second, "second", nil
	case "minute":
		return time.Minute, "minute", nil
	case "hour":
		return time.Hour, "hour", nil
	case "day":
		return 24 * time.Hour, "day", nil
	default:
		return 0, "", fmt.Errorf("unknown window %q: valid windows are second, minute, hour, day", raw)
	}
}
