package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter returns nil when requestsPerMin is zero, which disables
// limiting.
func NewRateLimiter(requestsPerMin, burst int) *RateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	now := l.now()
	l.lastSeen[key] = now
	l.mu.Unlock()

	return lim.AllowN(now, 1)
}

// Evict drops limiters idle for longer than maxIdle.
func (l *RateLimiter) Evict(maxIdle time.Duration) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for key, seen := range l.lastSeen {
		if now.Sub(seen) > maxIdle {
			delete(l.limiters, key)
			delete(l.lastSeen, key)
			n++
		}
	}
	return n
}

// Middleware keys on the authenticated user when present, otherwise the
// client IP. Mount it after the auth middleware to get per-user buckets.
func (l *RateLimiter) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if l == nil {
			return c.Next()
		}
		key := "ip:" + c.IP()
		if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok && id != uuid.Nil {
			key = "user:" + id.String()
		}
		if !l.Allow(key) {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}
