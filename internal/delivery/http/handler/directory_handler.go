package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DirectoryHandler struct {
	uc usecase.DirectorySearchUsecase
}

func NewDirectoryHandler(uc usecase.DirectorySearchUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

func (h *DirectoryHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Get("/companies", h.HandleSearchCompanies)
	r.Get("/job-seekers", h.HandleSearchJobSeekers)
	r.Get("/jobs", h.HandleSearchJobPosts)
}

func (h *DirectoryHandler) HandleSearchCompanies(c fiber.Ctx) error {
	params, err := parseSearchParams(c, "industries", "categories")
	if err != nil {
		return err
	}
	items, err := h.uc.SearchCompanies(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CompanyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCompanyResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *DirectoryHandler) HandleSearchJobSeekers(c fiber.Ctx) error {
	params, err := parseSearchParams(c, "professions", "categories")
	if err != nil {
		return err
	}
	items, err := h.uc.SearchJobSeekers(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobSeekerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobSeekerResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *DirectoryHandler) HandleSearchJobPosts(c fiber.Ctx) error {
	params, err := parseSearchParams(c, "categories")
	if err != nil {
		return err
	}
	items, err := h.uc.SearchJobPosts(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobPostResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobPostResponse(it))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func parseSearchParams(c fiber.Ctx, categoryKeys ...string) (usecase.SearchParams, error) {
	yearMin, err := parseOptionalInt(c, "year_min")
	if err != nil {
		return usecase.SearchParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid year_min", nil, err)
	}
	yearMax, err := parseOptionalInt(c, "year_max")
	if err != nil {
		return usecase.SearchParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid year_max", nil, err)
	}
	return usecase.SearchParams{
		Query:      c.Query("q"),
		Categories: parseListQuery(c, categoryKeys...),
		Location:   c.Query("location"),
		YearMin:    yearMin,
		YearMax:    yearMax,
	}, nil
}
