package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPoolMinConns != 4 {
		t.Fatalf("unexpected DBPoolMinConns: %d", cfg.DBPoolMinConns)
	}
	if cfg.DBPoolMaxConns != 10 {
		t.Fatalf("unexpected DBPoolMaxConns: %d", cfg.DBPoolMaxConns)
	}
	if cfg.DBAcquireTimeout != 5*time.Second {
		t.Fatalf("unexpected DBAcquireTimeout: %s", cfg.DBAcquireTimeout)
	}
	if cfg.RateLimitStorageURI != "memory://" {
		t.Fatalf("unexpected RateLimitStorageURI: %q", cfg.RateLimitStorageURI)
	}
	if len(cfg.RateLimitDefault) != 2 {
		t.Fatalf("unexpected default policy length: %d", len(cfg.RateLimitDefault))
	}
	if cfg.RateLimitDefault[0].Count != 200 || cfg.RateLimitDefault[0].Window != 24*time.Hour {
		t.Fatalf("unexpected first default limit: %+v", cfg.RateLimitDefault[0])
	}
	if cfg.RateLimitDefault[1].Count != 50 || cfg.RateLimitDefault[1].Window != time.Hour {
		t.Fatalf("unexpected second default limit: %+v", cfg.RateLimitDefault[1])
	}
	if len(cfg.RateLimitView) != 1 || cfg.RateLimitView[0].Count != 1 || cfg.RateLimitView[0].Window != time.Second {
		t.Fatalf("unexpected view policy: %+v", cfg.RateLimitView)
	}
	if !cfg.RateLimitFailOpen {
		t.Fatalf("expected RateLimitFailOpen default true")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_PoolBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_POOL_MIN_CONNS", "12")
	t.Setenv("DB_POOL_MAX_CONNS", "10")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when min conns exceed max conns")
	}
}

func TestLoad_InvalidRateLimitPolicy(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RATELIMIT_DEFAULT", "200/fortnight")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown rate limit window")
	}
}

func TestLoad_AcquireTimeoutMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_ACQUIRE_TIMEOUT", "-1s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive DB_ACQUIRE_TIMEOUT")
	}
}
