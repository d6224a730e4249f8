package reports

import (
	"context"

	"github.com/statusvillain/statusvillain/internal/models"
)

// Repository describes persistence operations for status reports.
type Repository interface {
	// Create inserts a new report. An id collision yields
	// common.ErrorAlreadyExists; it is surfaced, never retried.
	Create(ctx context.Context, report *models.StatusReport) error

	// ListByEmail returns the account's reports, most recent first.
	ListByEmail(ctx context.Context, email string) ([]models.StatusReport, error)
}
