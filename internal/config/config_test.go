package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobboard")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "JWT_ACCESS_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in error, got %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("SNAPSHOT_REFRESH_SPEC", "")
	t.Setenv("SNAPSHOT_BREAKER_FAILURES", "")
	t.Setenv("SNAPSHOT_BREAKER_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_PER_MIN", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unexpected redis ttl: %s", cfg.Redis.TTL)
	}
	if cfg.Snapshot.RefreshSpec != "@every 10m" {
		t.Fatalf("unexpected refresh spec: %q", cfg.Snapshot.RefreshSpec)
	}
	if cfg.Snapshot.BreakerFailures != 5 || cfg.Snapshot.BreakerTimeout != 30*time.Second {
		t.Fatalf("unexpected breaker defaults: %+v", cfg.Snapshot)
	}
	if cfg.Limits.RequestsPerMin != 120 || cfg.Limits.Burst != 20 {
		t.Fatalf("unexpected limits: %+v", cfg.Limits)
	}
	loc, err := cfg.App.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v err=%v", loc, err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "ten")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoad_InvalidCount(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_PER_MIN", "-3")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) || !strings.Contains(err.Error(), "RATE_LIMIT_PER_MIN") {
		t.Fatalf("expected errInvalidEnv for RATE_LIMIT_PER_MIN, got %v", err)
	}
}
