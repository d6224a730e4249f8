package models

import "time"

// StatusReport is one day's standup entry for an account, owned via the
// account email. Reports are immutable once written.
type StatusReport struct {
	ID                    string
	UserEmail             string
	CreatedAt             time.Time
	TodayMessage          string
	YesterdayMessage      string
	HasCompletedYesterday bool
}
