package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/statusvillain/statusvillain/internal/buildinfo"
	"github.com/statusvillain/statusvillain/internal/cli"
	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/config"
	"github.com/statusvillain/statusvillain/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stdout, "You need to provide a command to status villain.")
		printUsage(os.Stdout)
		return 1
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "failed to load config", "error", err)
		return 1
	}

	app, err := cli.NewApp(ctx, cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		return 1
	}
	defer app.Close()

	switch command {
	case "init":
		err = app.Init(ctx)
	case "report":
		err = app.Report(ctx)
	default:
		fmt.Fprintf(os.Stdout, "%s is not implemented\n", command)
		printUsage(os.Stdout)
		return 1
	}

	if err != nil {
		// Rejections and cancellations were already reported to the user.
		if !errors.Is(err, cli.ErrAuthenticationRejected) && !errors.Is(err, common.ErrorCancelled) {
			log.Error(ctx, "command failed", "error", err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "The CLI standup bot for engineers.")
	fmt.Fprintln(w, "Usage: statusvillain <command>")
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintln(w, "  init     set up your user profile and credentials")
	fmt.Fprintln(w, "  report   write your status report for today")
}
