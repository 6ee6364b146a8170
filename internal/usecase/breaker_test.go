package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/company"
)

func TestBreakerSource_OpensAfterFailures(t *testing.T) {
	src := &countingSource[company.Company]{err: errors.New("connection refused")}
	b := NewBreakerSource[company.Company](SnapshotCompanies, src, BreakerSettings{ConsecutiveFailures: 2, Timeout: time.Hour}, nil)

	for i := 0; i < 2; i++ {
		if _, err := b.Snapshot(context.Background()); err == nil || errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d: expected source error, got %v", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("expected open breaker, got %s", b.State())
	}

	_, err := b.Snapshot(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable while open, got %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("source must not be called while open, got %d calls", src.calls)
	}
}

func TestBreakerSource_PassesThrough(t *testing.T) {
	src := &countingSource[company.Company]{items: []company.Company{{Name: "Acme Corp"}}}
	b := NewBreakerSource[company.Company](SnapshotCompanies, src, BreakerSettings{}, nil)

	got, err := b.Snapshot(context.Background())
	if err != nil || len(got) != 1 || b.State() != "closed" {
		t.Fatalf("unexpected: %+v err=%v state=%s", got, err, b.State())
	}
}
