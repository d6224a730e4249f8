package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO users (id, email, username, password, created_at)
		VALUES ('u1', 'a@b.c', 'ab', 'x', '2026-01-01T00:00:00.000000000Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO status_reports (id, user_email, created_at, today_message, yesterday_message, has_completed_yesterday)
		VALUES ('r1', 'a@b.c', '2026-01-01T00:00:00.000000000Z', 't', 'y', 1)`)
	require.NoError(t, err)
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "nested", "status_villain.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
