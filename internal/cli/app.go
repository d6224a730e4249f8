// Package cli implements the interactive surface of status-villain: the
// one-time init flow and the daily report session. All user interaction goes
// through an injected reader and output sink so flows stay testable.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/config"
	"github.com/statusvillain/statusvillain/internal/credentials"
	"github.com/statusvillain/statusvillain/internal/logging"
	"github.com/statusvillain/statusvillain/internal/repositories/accounts"
	"github.com/statusvillain/statusvillain/internal/repositories/reports"
	"github.com/statusvillain/statusvillain/internal/services"
	"github.com/statusvillain/statusvillain/internal/storage"
)

// App wires the services behind the CLI flows.
type App struct {
	config   *config.Config
	log      logging.Logger
	out      io.Writer
	reader   *bufio.Reader
	db       *sql.DB
	creds    *credentials.Store
	accounts *services.AccountService
	auth     *services.AuthService
	reports  *services.ReportService
}

// NewApp opens the local database, applies migrations, and wires the
// services. in and out carry all user interaction.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	accountsRepo := accounts.NewSQLiteRepository(db)
	reportsRepo := reports.NewSQLiteRepository(db)

	return &App{
		config:   cfg,
		log:      log,
		out:      out,
		reader:   bufio.NewReader(in),
		db:       db,
		creds:    credentials.NewStore(cfg.CredentialsFile),
		accounts: services.NewAccountService(accountsRepo),
		auth:     services.NewAuthService(accountsRepo),
		reports:  services.NewReportService(reportsRepo),
	}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// runFlow executes a flow and maps cancellation to a user-visible
// "nothing saved" message. Nothing is persisted once a prompt is cancelled.
func (a *App) runFlow(ctx context.Context, flow func(context.Context) error) error {
	err := flow(ctx)
	if errors.Is(err, common.ErrorCancelled) {
		fmt.Fprintln(a.out, "Cancelled, nothing saved.")
	}
	return err
}
