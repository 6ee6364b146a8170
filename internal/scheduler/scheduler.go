// Package scheduler periodically rebuilds the cached entity snapshots.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"jobboard/internal/usecase"
)

type Refresher interface {
	RefreshAll(ctx context.Context) ([]usecase.RefreshResult, error)
}

// Scheduler wraps robfig/cron and runs the snapshot refresh loop.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	spec      string
	logger    *log.Logger
}

// New creates a Scheduler firing on spec, e.g. "@every 10m". An empty spec
// disables scheduling.
func New(spec string, refresher Refresher, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	cl := cron.PrintfLogger(logger)
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl))),
		refresher: refresher,
		spec:      strings.TrimSpace(spec),
		logger:    logger,
	}
}

// Start registers the job and starts the scheduler. One refresh also runs
// immediately so the cache is warm before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" {
		s.logger.Println("[Scheduler] Disabled, no refresh spec")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Scheduler] Cron started spec=%s", s.spec)

	go s.RunOnce(ctx)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Println("[Scheduler] Cron stopped")
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	s.logger.Println("[Scheduler] Refresh cycle started")
	results, err := s.refresher.RefreshAll(ctx)
	if err != nil {
		s.logger.Printf("[Scheduler] Refresh cycle finished with errors: %v", err)
		return
	}
	s.logger.Printf("[Scheduler] Refresh cycle complete kinds=%d", len(results))
}
