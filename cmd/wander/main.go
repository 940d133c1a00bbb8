package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mariusbk/wander/internal/cli"
	"github.com/mariusbk/wander/internal/db"
	"github.com/mariusbk/wander/internal/repository"
	"github.com/mariusbk/wander/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.wander/wander.db
	dbPath := os.Getenv("WANDER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".wander", "wander.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Optional use-case telemetry: WANDER_LOG is a file path, or "-" for stderr.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if logDest := os.Getenv("WANDER_LOG"); logDest != "" {
		var w io.Writer
		if logDest == "-" {
			w = os.Stderr
		} else {
			f, err := os.OpenFile(logDest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			w = f
		}
		observer = service.NewLogUseCaseObserver(w)
	}

	// Wire repository and service
	placeRepo := repository.NewSQLitePlaceRepo(database)

	app := &cli.App{
		Places: service.NewPlaceService(placeRepo, observer),
	}

	// Detect interactive terminal so a bare "wander" opens the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
