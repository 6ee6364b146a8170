package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	g := r.Group("/companies/:company_id/analytics")
	g.Get("/jobs", h.HandleJobAnalytics)
	g.Get("/categories", h.HandleCategoryAnalytics)
	g.Get("/summary", h.HandleSummary)
}

func (h *AnalyticsHandler) HandleJobAnalytics(c fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return err
	}
	items, err := h.uc.JobAnalytics(c.Context(), callerFromCtx(c), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobAnalyticsResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobAnalyticsResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *AnalyticsHandler) HandleCategoryAnalytics(c fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return err
	}
	items, err := h.uc.CategoryAnalytics(c.Context(), callerFromCtx(c), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CategoryShareResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCategoryShareResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *AnalyticsHandler) HandleSummary(c fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return err
	}
	sum, err := h.uc.Summary(c.Context(), callerFromCtx(c), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewSummaryResponse(sum))
}

func callerFromCtx(c fiber.Ctx) usecase.Caller {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	role, _ := c.Locals(middleware.CtxRoleKey).(string)
	return usecase.Caller{UserID: userID, Role: role}
}

func companyIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("company_id"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid company_id", nil, err)
	}
	return id, nil
}
