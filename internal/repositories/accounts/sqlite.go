// Package accounts provides the persistence layer for account records,
// backed by the local SQLite database.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/dbx"
	"github.com/statusvillain/statusvillain/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the account. INSERT OR IGNORE keeps the operation a single
// atomic statement; zero affected rows means the email is already taken.
func (r *SQLiteRepository) Create(ctx context.Context, a *models.Account) error {
	query := `INSERT OR IGNORE INTO users (id, email, username, password, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		a.ID, a.Email, a.Username, a.Password, a.FirstName, a.LastName,
		a.CreatedAt.UTC().Format(dbx.TimeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

// GetByLogin looks an account up by exact (email, username) match.
func (r *SQLiteRepository) GetByLogin(ctx context.Context, email, username string) (*models.Account, error) {
	query := `SELECT id, email, username, password, first_name, last_name, created_at
		FROM users WHERE email = ? AND username = ?`
	row := r.db.QueryRowContext(ctx, query, email, username)

	var a models.Account
	var createdAt string
	if err := row.Scan(&a.ID, &a.Email, &a.Username, &a.Password, &a.FirstName, &a.LastName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}

	ts, err := time.Parse(dbx.TimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	a.CreatedAt = ts
	return &a, nil
}
