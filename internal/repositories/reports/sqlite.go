// Package reports provides the persistence layer for status reports,
// backed by the local SQLite database.
package reports

import (
	"context"
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

// Create inserts the report as a single atomic statement. Zero affected rows
// means the id already exists.
func (r *SQLiteRepository) Create(ctx context.Context, rep *models.StatusReport) error {
	query := `INSERT OR IGNORE INTO status_reports
		(id, user_email, created_at, today_message, yesterday_message, has_completed_yesterday)
		VALUES (?, ?, ?, ?, ?, ?)`
	completed := 0
	if rep.HasCompletedYesterday {
		completed = 1
	}
	res, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.UserEmail, rep.CreatedAt.UTC().Format(dbx.TimeLayout),
		rep.TodayMessage, rep.YesterdayMessage, completed)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
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

// ListByEmail returns the account's reports ordered by creation time
// descending.
func (r *SQLiteRepository) ListByEmail(ctx context.Context, email string) ([]models.StatusReport, error) {
	query := `SELECT id, user_email, created_at, today_message, yesterday_message, has_completed_yesterday
		FROM status_reports WHERE user_email = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}
	defer rows.Close()

	var result []models.StatusReport
	for rows.Next() {
		var item models.StatusReport
		var createdAt string
		var completed int
		if err := rows.Scan(&item.ID, &item.UserEmail, &createdAt,
			&item.TodayMessage, &item.YesterdayMessage, &completed); err != nil {
			return nil, err
		}
		ts, err := time.Parse(dbx.TimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		item.CreatedAt = ts
		item.HasCompletedYesterday = completed != 0
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
