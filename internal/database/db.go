package database

import (
	"context"
	"database/sql"
)

// Querier is the read side shared by the pool and open transactions.
// Snapshot and metrics loaders only need this much.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type DB interface {
	Querier

	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes a database/sql view of the same pool for the migration runner.
	SQLDB() *sql.DB
}

type Tx interface {
	Querier

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

// CollectRows scans every remaining row with scan and closes rows. The
// result is never nil, so an empty table encodes as [] rather than null.
func CollectRows[T any](rows Rows, scan func(Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
