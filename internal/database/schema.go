package database

import (
	"context"
	"fmt"
)

// RequiredColumns lists the columns the snapshot repositories read.
var RequiredColumns = map[string][]string{
	"companies":    {"id", "name", "email", "location", "description", "industry", "website", "founded_year", "created_at"},
	"job_seekers":  {"id", "name", "email", "profession", "bio", "location", "skills", "created_at"},
	"job_posts":    {"id", "company_id", "title", "category", "location", "description", "job_type", "deadline", "created_at"},
	"applications": {"id", "job_post_id", "job_seeker_id", "status", "created_at"},
	"reports":      {"id", "reporter_id", "target_id", "target_type", "reason", "description", "status", "created_at"},
}

// EnsureSchema verifies every table in RequiredColumns after migrations ran.
func EnsureSchema(ctx context.Context, db DB) error {
	for table, cols := range RequiredColumns {
		if err := EnsureTableColumns(ctx, db, table, cols...); err != nil {
			return err
		}
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, db DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
