package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
	skip   map[string]bool
}

// NewAccessLogMiddleware logs one line per request. Paths in skipPaths, such
// as the health probe, are not logged.
func NewAccessLogMiddleware(logger *log.Logger, skipPaths ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}
	return &AccessLogMiddleware{logger: logger, skip: skip}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		if m == nil || m.logger == nil || m.skip[c.Path()] {
			return err
		}

		userID := "-"
		if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok && id != uuid.Nil {
			userID = id.String()
		}

		m.logger.Printf(
			"[HTTP] access rid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d user_id=%s ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start),
			len(c.Response().Body()), userID, c.Get("User-Agent"),
		)

		return err
	}
}
