package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statusvillain/statusvillain/internal/config"
	"github.com/statusvillain/statusvillain/internal/logging"
)

// newTestApp wires a full App against a throwaway database and credential
// path, with input scripted and output captured.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		ProfilesDir:     dir,
		CredentialsFile: filepath.Join(dir, "credentials.yaml"),
		DatabaseFile:    filepath.Join(dir, "status_villain.db"),
	}

	var out bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(context.Background(), cfg, log, strings.NewReader(input), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app, &out
}

// stubPassword replaces the password prompt for the duration of a test.
func stubPassword(t *testing.T, password string) {
	t.Helper()
	old := getPassword
	getPassword = func(ctx context.Context, prompt string, w io.Writer) (string, error) {
		return password, nil
	}
	t.Cleanup(func() { getPassword = old })
}
