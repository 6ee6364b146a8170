package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	// ConsecutiveFailures opens the breaker; zero means 5.
	ConsecutiveFailures uint32
	// Timeout is how long the breaker stays open before a probe.
	Timeout time.Duration
}

// BreakerSource guards a snapshot source with a circuit breaker so that a
// failing database turns into fast ErrUnavailable responses.
type BreakerSource[T any] struct {
	source SnapshotSource[T]
	cb     *gobreaker.CircuitBreaker[[]T]
}

func NewBreakerSource[T any](kind string, source SnapshotSource[T], s BreakerSettings, logger *log.Logger) *BreakerSource[T] {
	failures := s.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}
	settings := gobreaker.Settings{
		Name:        "snapshot-" + kind,
		MaxRequests: 1,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up is not a source failure
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Printf("[Breaker] State changed name=%s from=%s to=%s", name, from, to)
			}
		},
	}
	return &BreakerSource[T]{source: source, cb: gobreaker.NewCircuitBreaker[[]T](settings)}
}

func (b *BreakerSource[T]) Snapshot(ctx context.Context) ([]T, error) {
	items, err := b.cb.Execute(func() ([]T, error) {
		return b.source.Snapshot(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, b.cb.Name(), err)
	}
	return items, err
}

func (b *BreakerSource[T]) State() string {
	return b.cb.State().String()
}
