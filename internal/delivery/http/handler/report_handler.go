package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportListUsecase
}

func NewReportHandler(uc usecase.ReportListUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Get("/reports", h.HandleListReports)
}

func (h *ReportHandler) HandleListReports(c fiber.Ctx) error {
	items, err := h.uc.ListReports(c.Context(), usecase.ReportListParams{
		Query:    c.Query("q"),
		Statuses: parseListQuery(c, "statuses", "status"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ReportResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewReportResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
