package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"
)

type PostgresCompanyRepository struct {
	db database.Querier
}

func NewPostgresCompanyRepository(db database.Querier) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

// Snapshot returns every company in registration order.
func (r *PostgresCompanyRepository) Snapshot(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(location, ''),
		        COALESCE(description, ''), COALESCE(industry, ''), COALESCE(website, ''),
		        COALESCE(founded_year, 0), created_at
		 FROM companies
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return database.CollectRows(rows, func(rows database.Rows) (company.Company, error) {
		var c company.Company
		var founded int
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Location, &c.Description, &c.Industry, &c.Website, &founded, &c.CreatedAt); err != nil {
			return c, err
		}
		c.FoundedYear = company.FoundedYearString(founded)
		return c, nil
	})
}
