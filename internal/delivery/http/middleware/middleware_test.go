package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func newProtectedApp(svc jwt.Service, roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/admin", NewAuthMiddleware(svc).Middleware(), RequireRole(roles...), func(c fiber.Ctx) error {
		id, _ := c.Locals(CtxUserIDKey).(uuid.UUID)
		return c.SendString(id.String())
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", "jobboard-auth", time.Minute)
	app := newProtectedApp(svc, jwt.RoleAdmin)

	admin, _ := svc.GenerateAccessToken(uuid.New(), "a@example.com", jwt.RoleAdmin)
	seeker, _ := svc.GenerateAccessToken(uuid.New(), "s@example.com", jwt.RoleJobSeeker)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: fiber.StatusUnauthorized},
		{name: "malformed", header: "Token abc", want: fiber.StatusUnauthorized},
		{name: "invalid", header: "Bearer abc", want: fiber.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + seeker, want: fiber.StatusForbidden},
		{name: "admin", header: "Bearer " + admin, want: fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{name: "app 400", err: NewAppError(fiber.StatusBadRequest, "", nil, nil), want: 400, msg: "bad request"},
		{name: "app 503 kept", err: NewAppError(fiber.StatusServiceUnavailable, "", nil, nil), want: 503, msg: "service unavailable"},
		{name: "app 502 masked", err: NewAppError(fiber.StatusBadGateway, "upstream", nil, nil), want: 500, msg: "internal server error"},
		{name: "fiber 404", err: fiber.ErrNotFound, want: 404, msg: "Not Found"},
		{name: "plain", err: errors.New("boom"), want: 500, msg: "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			if status != tc.want || msg != tc.msg {
				t.Fatalf("expected %d %q, got %d %q", tc.want, tc.msg, status, msg)
			}
		})
	}
}
