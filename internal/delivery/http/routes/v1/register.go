package v1

import (
	"context"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type Cache interface {
	Ping(ctx context.Context) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Handlers struct {
	Auth      jwt.Service
	Limiter   *middleware.RateLimiter
	Directory *handler.DirectoryHandler
	Reports   *handler.ReportHandler
	Analytics *handler.AnalyticsHandler
	Snapshots *handler.SnapshotHandler
}

// Register mounts the v1 API. Directory search and analytics need any valid
// access token; report moderation and snapshot control need the admin role.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(h.Auth)

	// The unprefixed group below applies to every later route under r, so
	// admin routes are mounted first to keep them out of the rate limiter.
	admin := r.Group("/admin", authMw.Middleware(), middleware.RequireRole(jwt.RoleAdmin))
	h.Reports.RegisterRoutes(admin)
	h.Snapshots.RegisterRoutes(admin)

	protected := r.Group("", authMw.Middleware(), h.Limiter.Middleware())
	h.Directory.RegisterRoutes(protected)
	h.Analytics.RegisterRoutes(protected)
}
