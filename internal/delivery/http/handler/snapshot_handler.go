package handler

import (
	"context"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SnapshotRefresher interface {
	RefreshAll(ctx context.Context) ([]usecase.RefreshResult, error)
	RefreshKind(ctx context.Context, kind string) (usecase.RefreshResult, error)
}

type PatternDeleter interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type SnapshotHandler struct {
	refresher SnapshotRefresher
	cache     PatternDeleter
}

func NewSnapshotHandler(refresher SnapshotRefresher, cache PatternDeleter) *SnapshotHandler {
	return &SnapshotHandler{refresher: refresher, cache: cache}
}

func (h *SnapshotHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Post("/snapshots/refresh", h.HandleRefresh)
	r.Delete("/snapshots", h.HandleInvalidate)
}

// HandleRefresh rebuilds one snapshot when ?kind= is given, otherwise all of
// them. Partial failures are reported per kind with status 200.
func (h *SnapshotHandler) HandleRefresh(c fiber.Ctx) error {
	kind := strings.TrimSpace(c.Query("kind"))
	if kind != "" {
		res, err := h.refresher.RefreshKind(c.Context(), kind)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, "success", []dto.SnapshotRefreshResponse{toRefreshResponse(res)})
	}

	results, _ := h.refresher.RefreshAll(c.Context())
	out := make([]dto.SnapshotRefreshResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toRefreshResponse(r))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

// HandleInvalidate drops every cached snapshot so the next read goes to the
// database.
func (h *SnapshotHandler) HandleInvalidate(c fiber.Ctx) error {
	if h.cache != nil {
		if err := h.cache.DeleteByPattern(c.Context(), usecase.SnapshotCacheKey("*")); err != nil {
			return mapUsecaseError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, "success", nil)
}

func toRefreshResponse(r usecase.RefreshResult) dto.SnapshotRefreshResponse {
	out := dto.SnapshotRefreshResponse{Kind: r.Kind, Count: r.Count}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
