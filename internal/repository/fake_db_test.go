package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type fakeDB struct {
	rows     [][]any
	queryErr error
	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.lastSQL = query
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.rows, idx: -1}, nil
}
func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}
func (f *fakeDB) SQLDB() *sql.DB { return nil }

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: want %d columns, got %d", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = row[i].(uuid.UUID)
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}
