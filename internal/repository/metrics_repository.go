package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/metrics"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

type PostgresMetricsRepository struct {
	db database.Querier
}

func NewPostgresMetricsRepository(db database.Querier) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

// JobMetricsByCompany counts applications per status for every job the
// company posted. Jobs without applications are included with zero counters.
func (r *PostgresMetricsRepository) JobMetricsByCompany(ctx context.Context, companyID uuid.UUID) ([]metrics.JobMetrics, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, COALESCE(p.title, ''), COALESCE(p.category, ''),
		        COUNT(a.id),
		        COUNT(a.id) FILTER (WHERE a.status = $2),
		        COUNT(a.id) FILTER (WHERE a.status = $3),
		        COUNT(a.id) FILTER (WHERE a.status = $4),
		        COALESCE(p.deadline, '')
		 FROM job_posts p
		 LEFT JOIN applications a ON a.job_post_id = p.id
		 WHERE p.company_id = $1
		 GROUP BY p.id, p.title, p.category, p.deadline, p.created_at
		 ORDER BY p.created_at DESC, p.id ASC`,
		companyID, ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusHired,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (metrics.JobMetrics, error) {
		var m metrics.JobMetrics
		err := rows.Scan(&m.JobID, &m.Title, &m.Category, &m.TotalApplications, &m.Shortlisted, &m.Rejected, &m.Hired, &m.Deadline)
		return m, err
	})
}

// CategoryMetricsByCompany returns application totals per raw category label.
func (r *PostgresMetricsRepository) CategoryMetricsByCompany(ctx context.Context, companyID uuid.UUID) ([]metrics.CategoryMetrics, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(p.category, ''), COUNT(a.id)
		 FROM job_posts p
		 LEFT JOIN applications a ON a.job_post_id = p.id
		 WHERE p.company_id = $1
		 GROUP BY COALESCE(p.category, '')
		 ORDER BY 1 ASC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (metrics.CategoryMetrics, error) {
		var m metrics.CategoryMetrics
		err := rows.Scan(&m.Label, &m.TotalApplications)
		return m, err
	})
}
