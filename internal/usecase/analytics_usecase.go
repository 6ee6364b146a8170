package usecase

import (
	"context"
	"log"
	"time"

	"jobboard/internal/analytics"
	"jobboard/internal/domain/metrics"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
)

type MetricsSource interface {
	JobMetricsByCompany(ctx context.Context, companyID uuid.UUID) ([]metrics.JobMetrics, error)
	CategoryMetricsByCompany(ctx context.Context, companyID uuid.UUID) ([]metrics.CategoryMetrics, error)
}

// Caller identifies the authenticated account behind a request.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

type AnalyticsUsecase interface {
	JobAnalytics(ctx context.Context, caller Caller, companyID uuid.UUID) ([]analytics.JobAnalytics, error)
	CategoryAnalytics(ctx context.Context, caller Caller, companyID uuid.UUID) ([]analytics.CategoryShare, error)
	Summary(ctx context.Context, caller Caller, companyID uuid.UUID) (analytics.Summary, error)
}

type Analytics struct {
	source MetricsSource
	loc    *time.Location
	now    func() time.Time
	logger *log.Logger
}

func NewAnalytics(source MetricsSource, loc *time.Location, logger *log.Logger) *Analytics {
	if loc == nil {
		loc = time.UTC
	}
	return &Analytics{source: source, loc: loc, now: time.Now, logger: logger}
}

// JobAnalytics derives rates and deadline countdowns for every job of the
// company. Counters are re-read on every call.
func (u *Analytics) JobAnalytics(ctx context.Context, caller Caller, companyID uuid.UUID) ([]analytics.JobAnalytics, error) {
	if err := u.authorize(caller, companyID); err != nil {
		return nil, err
	}
	jobs, err := u.source.JobMetricsByCompany(ctx, companyID)
	if err != nil {
		u.logf("[Analytics] Job metrics error company_id=%s err=%v", companyID, err)
		return nil, ErrInternal
	}

	now := u.now().In(u.loc)
	out := make([]analytics.JobAnalytics, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, analytics.JobReport(j, now))
	}
	return out, nil
}

func (u *Analytics) CategoryAnalytics(ctx context.Context, caller Caller, companyID uuid.UUID) ([]analytics.CategoryShare, error) {
	if err := u.authorize(caller, companyID); err != nil {
		return nil, err
	}
	cats, err := u.source.CategoryMetricsByCompany(ctx, companyID)
	if err != nil {
		u.logf("[Analytics] Category metrics error company_id=%s err=%v", companyID, err)
		return nil, ErrInternal
	}
	return analytics.CategoryBreakdown(cats), nil
}

func (u *Analytics) Summary(ctx context.Context, caller Caller, companyID uuid.UUID) (analytics.Summary, error) {
	if err := u.authorize(caller, companyID); err != nil {
		return analytics.Summary{}, err
	}
	jobs, err := u.source.JobMetricsByCompany(ctx, companyID)
	if err != nil {
		u.logf("[Analytics] Job metrics error company_id=%s err=%v", companyID, err)
		return analytics.Summary{}, ErrInternal
	}
	return analytics.Summarize(jobs), nil
}

// authorize lets admins read any company and company accounts read only
// their own; a company account's user id is its company id.
func (u *Analytics) authorize(caller Caller, companyID uuid.UUID) error {
	if companyID == uuid.Nil {
		return ErrInvalidInput
	}
	switch caller.Role {
	case jwt.RoleAdmin:
		return nil
	case jwt.RoleCompany:
		if caller.UserID == companyID {
			return nil
		}
	}
	u.logf("[Analytics] Forbidden company_id=%s user_id=%s role=%s", companyID, caller.UserID, caller.Role)
	return ErrForbidden
}

func (u *Analytics) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
