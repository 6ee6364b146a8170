package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/jobseeker"
)

type PostgresJobSeekerRepository struct {
	db database.Querier
}

func NewPostgresJobSeekerRepository(db database.Querier) *PostgresJobSeekerRepository {
	return &PostgresJobSeekerRepository{db: db}
}

func (r *PostgresJobSeekerRepository) Snapshot(ctx context.Context) ([]jobseeker.JobSeeker, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(profession, ''),
		        COALESCE(bio, ''), COALESCE(location, ''), COALESCE(skills, ''), created_at
		 FROM job_seekers
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (jobseeker.JobSeeker, error) {
		var s jobseeker.JobSeeker
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Profession, &s.Bio, &s.Location, &s.Skills, &s.CreatedAt)
		return s, err
	})
}
