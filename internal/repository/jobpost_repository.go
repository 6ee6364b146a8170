package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/jobpost"
)

type PostgresJobPostRepository struct {
	db database.Querier
}

func NewPostgresJobPostRepository(db database.Querier) *PostgresJobPostRepository {
	return &PostgresJobPostRepository{db: db}
}

func (r *PostgresJobPostRepository) Snapshot(ctx context.Context) ([]jobpost.JobPost, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.company_id, COALESCE(p.title, ''), COALESCE(c.name, ''),
		        COALESCE(p.category, ''), COALESCE(p.location, ''), COALESCE(p.description, ''),
		        COALESCE(p.job_type, ''), COALESCE(p.deadline, ''), p.created_at
		 FROM job_posts p
		 LEFT JOIN companies c ON c.id = p.company_id
		 ORDER BY p.created_at ASC, p.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (jobpost.JobPost, error) {
		var p jobpost.JobPost
		err := rows.Scan(&p.ID, &p.CompanyID, &p.Title, &p.CompanyName, &p.Category, &p.Location, &p.Description, &p.JobType, &p.Deadline, &p.CreatedAt)
		return p, err
	})
}
