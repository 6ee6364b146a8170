package routes

import (
	"log"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/observability"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB        handler.Pinger
	Cache     v1.Cache
	JWT       jwt.Service
	Hub       *ws.Hub
	Logger    *log.Logger
	Directory usecase.DirectorySearchUsecase
	Reports   usecase.ReportListUsecase
	Analytics usecase.AnalyticsUsecase
	Refresher handler.SnapshotRefresher
	Metrics   *observability.Metrics
	Limiter   *middleware.RateLimiter
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
	ws     *ws.Handler
}

func NewRegistry(deps Deps) *Registry {
	var cachePinger handler.Pinger
	if deps.Cache != nil {
		cachePinger = deps.Cache
	}
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB, cachePinger),
		ws:     ws.NewHandler(deps.Hub, deps.Logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.ws.RegisterRoutes(app)
	if r.deps.Metrics != nil {
		app.Get("/metrics", r.deps.Metrics.Handler())
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Handlers{
		Auth:      r.deps.JWT,
		Limiter:   r.deps.Limiter,
		Directory: handler.NewDirectoryHandler(r.deps.Directory),
		Reports:   handler.NewReportHandler(r.deps.Reports),
		Analytics: handler.NewAnalyticsHandler(r.deps.Analytics),
		Snapshots: handler.NewSnapshotHandler(r.deps.Refresher, r.deps.Cache),
	})
}
