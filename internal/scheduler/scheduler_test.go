package scheduler

import (
	"context"
	"io"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/usecase"
)

type countingRefresher struct {
	calls atomic.Int32
	done  chan struct{}
}

func (r *countingRefresher) RefreshAll(context.Context) ([]usecase.RefreshResult, error) {
	if r.calls.Add(1) == 1 && r.done != nil {
		close(r.done)
	}
	return nil, nil
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestScheduler_StartRunsImmediately(t *testing.T) {
	r := &countingRefresher{done: make(chan struct{})}
	s := New("@every 1h", r, quietLogger())

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer s.Stop()

	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresh did not run on start")
	}
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New("every now and then", &countingRefresher{}, quietLogger())
	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}

func TestScheduler_EmptySpecDisabled(t *testing.T) {
	r := &countingRefresher{}
	s := New("  ", r, quietLogger())
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s.Stop()
	if r.calls.Load() != 0 {
		t.Fatalf("expected no refresh, got %d", r.calls.Load())
	}
}

func TestScheduler_RunOnceSkipsCancelled(t *testing.T) {
	r := &countingRefresher{}
	s := New("@every 1h", r, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.RunOnce(ctx)
	if r.calls.Load() != 0 {
		t.Fatalf("expected no refresh after cancel")
	}
}
