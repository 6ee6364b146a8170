package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/scheduler"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Scheduler *scheduler.Scheduler
	Limiter   *middleware.RateLimiter
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})
	limiter := middleware.NewRateLimiter(c.Config.Limits.RequestsPerMin, c.Config.Limits.Burst)

	registerGlobalMiddleware(f, c)
	routes.NewRegistry(routes.Deps{
		DB:        c.DB,
		Cache:     c.Cache,
		JWT:       c.JWT,
		Hub:       c.Hub,
		Logger:    c.Logger,
		Directory: c.Directory,
		Reports:   c.ReportLog,
		Analytics: c.Analytics,
		Refresher: c.Refresher,
		Metrics:   c.Metrics,
		Limiter:   limiter,
	}).Register(f)

	return &App{
		Fiber:     f,
		Container: c,
		Scheduler: scheduler.New(c.Config.Snapshot.RefreshSpec, c.Refresher, c.Logger),
		Limiter:   limiter,
	}
}

// Start launches the background workers. They stop when ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	go a.Container.Hub.Run(ctx)
	if a.Limiter != nil {
		go a.evictLimiters(ctx, 10*time.Minute)
	}
	return a.Scheduler.Start(ctx)
}

func (a *App) evictLimiters(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.Limiter.Evict(every)
		}
	}
}

func (a *App) Stop() {
	a.Scheduler.Stop()
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(c.Metrics.Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger, "/health", "/metrics").Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
