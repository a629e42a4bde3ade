package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/meetcost/meetcost/config"
	"github.com/meetcost/meetcost/internal/cli"
	"github.com/meetcost/meetcost/internal/currency"
	"github.com/meetcost/meetcost/internal/history"
	"github.com/meetcost/meetcost/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := history.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing history store: %w", err)
	}
	defer store.Close()
	slog.Debug("history store ready", "database", cfg.DBPath)

	deps := &cli.Dependencies{
		Config:    cfg,
		Store:     store,
		Converter: currency.New(),
	}

	return cli.NewRootCmd(deps).Execute()
}
