package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedis_UnavailableBypasses(t *testing.T) {
	r := &Redis{}
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "snapshot:companies", &out)
	if hit || err != nil {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "snapshot:companies", []string{"a"}, 0); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if err := r.DeleteByPattern(ctx, "snapshot:*"); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	ok, err := r.SetIfNotExists(ctx, "lock", "1", time.Second)
	if ok || err != nil {
		t.Fatalf("expected no lock, got ok=%v err=%v", ok, err)
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if err := r.Ping(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTTLOrDefault(t *testing.T) {
	if got := ttlOrDefault(0); got != defaultTTL {
		t.Fatalf("got %s", got)
	}
	if got := ttlOrDefault(time.Minute); got != time.Minute {
		t.Fatalf("got %s", got)
	}
}
