package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/config"
	"jobboard/internal/usecase"
)

func main() {
	kind := flag.String("kind", "all", "snapshot to rebuild: all, companies, job_seekers, job_posts or reports")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var results []usecase.RefreshResult
	k := strings.TrimSpace(*kind)
	if k == "" || k == "all" {
		results, err = c.Refresher.RefreshAll(ctx)
	} else {
		var res usecase.RefreshResult
		res, err = c.Refresher.RefreshKind(ctx, k)
		results = append(results, res)
	}

	for _, r := range results {
		if r.Err != nil {
			logger.Printf("[Refresh] kind=%s failed err=%v", r.Kind, r.Err)
			continue
		}
		logger.Printf("[Refresh] kind=%s count=%d", r.Kind, r.Count)
	}
	if err != nil {
		logger.Fatalf("refresh failed: %v (known kinds: %s)", err, strings.Join(c.Refresher.Kinds(), ", "))
	}
}
