package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/models"
	"github.com/statusvillain/statusvillain/internal/repositories/reports"
)

// ErrDuplicateReport signals an id collision on save. Practically
// unreachable with uuid ids; surfaced rather than retried because a retry
// would not change the outcome deterministically.
var ErrDuplicateReport = errors.New("report id already exists")

// ReportService reads and writes status reports for an account.
type ReportService struct {
	reports reports.Repository
}

// NewReportService constructs a ReportService over the given repository.
func NewReportService(repo reports.Repository) *ReportService {
	return &ReportService{reports: repo}
}

// History returns the account's reports, most recent first.
func (s *ReportService) History(ctx context.Context, email string) ([]models.StatusReport, error) {
	list, err := s.reports.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load report history: %w", err)
	}
	return list, nil
}

// Submit persists a new report with a generated id and current UTC
// timestamp, returning the stored record.
func (s *ReportService) Submit(ctx context.Context, email, todayMessage, yesterdayMessage string, completedYesterday bool) (*models.StatusReport, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: report owner email", common.ErrorMissingState)
	}

	report := &models.StatusReport{
		ID:                    uuid.NewString(),
		UserEmail:             email,
		CreatedAt:             time.Now().UTC(),
		TodayMessage:          todayMessage,
		YesterdayMessage:      yesterdayMessage,
		HasCompletedYesterday: completedYesterday,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrDuplicateReport
		}
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	return report, nil
}
