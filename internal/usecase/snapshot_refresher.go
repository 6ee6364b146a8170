package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/pkg/workerpool"
)

type Refreshable interface {
	Kind() string
	Refresh(ctx context.Context) (int, error)
}

type RefreshNotifier interface {
	NotifySnapshotRefreshed(kind string, count int)
}

type RefreshObserver interface {
	ObserveRefresh(kind string, count int, took time.Duration, err error)
}

// refreshWorkers bounds concurrent snapshot queries against the database.
const refreshWorkers = 2

type RefreshResult struct {
	Kind  string
	Count int
	Took  time.Duration
	Err   error
}

type SnapshotRefresher struct {
	targets  []Refreshable
	notifier RefreshNotifier
	observer RefreshObserver
	logger   *log.Logger
}

func NewSnapshotRefresher(notifier RefreshNotifier, logger *log.Logger, targets ...Refreshable) *SnapshotRefresher {
	return &SnapshotRefresher{targets: targets, notifier: notifier, logger: logger}
}

// SetObserver registers a sink for per-kind refresh outcomes, e.g. metrics.
func (r *SnapshotRefresher) SetObserver(o RefreshObserver) {
	r.observer = o
}

func (r *SnapshotRefresher) Kinds() []string {
	out := make([]string, 0, len(r.targets))
	for _, t := range r.targets {
		out = append(out, t.Kind())
	}
	return out
}

// RefreshAll refreshes every target. A failing target does not stop the
// others; the joined error reports all failures. Results and notifications
// follow target order.
func (r *SnapshotRefresher) RefreshAll(ctx context.Context) ([]RefreshResult, error) {
	return r.refresh(ctx, func(string) bool { return true })
}

// RefreshKind refreshes the single target with the given kind.
func (r *SnapshotRefresher) RefreshKind(ctx context.Context, kind string) (RefreshResult, error) {
	results, err := r.refresh(ctx, func(k string) bool { return k == kind })
	if len(results) == 0 {
		return RefreshResult{Kind: kind}, ErrInvalidInput
	}
	return results[0], err
}

func (r *SnapshotRefresher) refresh(ctx context.Context, want func(string) bool) ([]RefreshResult, error) {
	var selected []Refreshable
	for _, t := range r.targets {
		if want(t.Kind()) {
			selected = append(selected, t)
		}
	}

	results := make([]RefreshResult, len(selected))
	tasks := make([]workerpool.Task, len(selected))
	for i, t := range selected {
		results[i].Kind = t.Kind()
		tasks[i] = func(ctx context.Context) error {
			start := time.Now()
			n, err := t.Refresh(ctx)
			results[i].Count = n
			results[i].Took = time.Since(start)
			return err
		}
	}
	taskErrs := workerpool.RunAll(ctx, refreshWorkers, tasks)

	var errs []error
	for i := range results {
		res := &results[i]
		res.Err = taskErrs[i]
		if r.observer != nil {
			r.observer.ObserveRefresh(res.Kind, res.Count, res.Took, res.Err)
		}
		if res.Err != nil {
			errs = append(errs, res.Err)
			if r.logger != nil {
				r.logger.Printf("[Snapshot] Refresh failed kind=%s err=%v", res.Kind, res.Err)
			}
			continue
		}
		if r.logger != nil {
			r.logger.Printf("[Snapshot] Refreshed kind=%s count=%d took=%s", res.Kind, res.Count, res.Took)
		}
		if r.notifier != nil {
			r.notifier.NotifySnapshotRefreshed(res.Kind, res.Count)
		}
	}
	return results, errors.Join(errs...)
}
