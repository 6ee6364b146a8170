package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/report"
)

type PostgresReportRepository struct {
	db database.Querier
}

func NewPostgresReportRepository(db database.Querier) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// Snapshot returns reports in storage order; listing order is decided by
// the caller.
func (r *PostgresReportRepository) Snapshot(ctx context.Context) ([]report.Report, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reporter_id, COALESCE(target_id, ''), COALESCE(target_type, ''),
		        COALESCE(reason, ''), COALESCE(description, ''), COALESCE(status, 'pending'), created_at
		 FROM reports
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (report.Report, error) {
		var rep report.Report
		err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.TargetID, &rep.TargetType, &rep.Reason, &rep.Description, &rep.Status, &rep.CreatedAt)
		return rep, err
	})
}
