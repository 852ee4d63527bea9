package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/focustally/internal/cli"
	"github.com/alexanderramin/focustally/internal/config"
	"github.com/alexanderramin/focustally/internal/db"
	"github.com/alexanderramin/focustally/internal/repository"
	"github.com/alexanderramin/focustally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	app := &cli.App{Config: cfg}

	// Run history is opt-in; without it no database file is created.
	if cfg.History.Enabled {
		database, err := db.OpenDB(cfg.History.DBPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer database.Close()

		app.UoW = db.NewSQLiteUnitOfWork(database)
		app.History = service.NewHistoryService(repository.NewSQLiteRunRepo(database))
	}

	app.IsInputTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.IsOutputTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
