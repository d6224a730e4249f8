package reports

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE status_reports (
  id TEXT PRIMARY KEY,
  user_email TEXT NOT NULL,
  created_at TEXT NOT NULL,
  today_message TEXT NOT NULL,
  yesterday_message TEXT NOT NULL,
  has_completed_yesterday INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)
	return db
}

func testReport(id string, createdAt time.Time, completed bool) *models.StatusReport {
	return &models.StatusReport{
		ID:                    id,
		UserEmail:             "bb@gmail.com",
		CreatedAt:             createdAt,
		TodayMessage:          "today " + id,
		YesterdayMessage:      "yesterday " + id,
		HasCompletedYesterday: completed,
	}
}

func TestCreateAndListOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	require.NoError(t, r.Create(ctx, testReport("r1", base, true)))
	require.NoError(t, r.Create(ctx, testReport("r2", base.AddDate(0, 0, 1), false)))
	require.NoError(t, r.Create(ctx, testReport("r3", base.AddDate(0, 0, 2), true)))

	got, err := r.ListByEmail(ctx, "bb@gmail.com")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// most recent first
	assert.Equal(t, "r3", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
	assert.Equal(t, "r1", got[2].ID)

	assert.True(t, got[0].HasCompletedYesterday)
	assert.False(t, got[1].HasCompletedYesterday)
	assert.Equal(t, "today r3", got[0].TodayMessage)
	assert.True(t, got[0].CreatedAt.Equal(base.AddDate(0, 0, 2)))
}

func TestCreateDuplicateID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.Create(ctx, testReport("dup", now, true)))

	err := r.Create(ctx, testReport("dup", now.Add(time.Hour), false))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.ListByEmail(ctx, "bb@gmail.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].HasCompletedYesterday, "original row must survive the collision")
}

func TestListByEmailEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.ListByEmail(context.Background(), "nobody@gmail.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByEmailScopedToOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mine := testReport("mine", now, true)
	require.NoError(t, r.Create(ctx, mine))

	other := testReport("other", now, true)
	other.UserEmail = "someone@else.com"
	require.NoError(t, r.Create(ctx, other))

	got, err := r.ListByEmail(ctx, "bb@gmail.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].ID)
}
