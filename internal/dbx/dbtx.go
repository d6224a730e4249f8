// Package dbx holds tiny database/sql abstractions shared by repositories.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TimeLayout is the format timestamps are stored in. Unlike RFC3339Nano it
// keeps trailing zeros, so lexical order of stored values matches
// chronological order (all timestamps are written in UTC).
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
