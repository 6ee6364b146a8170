package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunAll_OrderAndErrors(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		func(context.Context) error { time.Sleep(20 * time.Millisecond); return nil },
		func(context.Context) error { return boom },
		func(context.Context) error { return nil },
	}
	errs := RunAll(context.Background(), 2, tasks)
	if len(errs) != 3 || errs[0] != nil || !errors.Is(errs[1], boom) || errs[2] != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRunAll_BoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	task := func(context.Context) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	}
	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = task
	}
	RunAll(context.Background(), 3, tasks)
	if peak.Load() > 3 {
		t.Fatalf("expected at most 3 concurrent tasks, got %d", peak.Load())
	}
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	errs := RunAll(ctx, 1, []Task{func(context.Context) error { return nil }})
	if len(errs) != 1 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs[0] != nil && !errors.Is(errs[0], context.Canceled) {
		t.Fatalf("unexpected error: %v", errs[0])
	}
}
