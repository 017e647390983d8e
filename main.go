package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/msomdec/school-records/internal/repository/sqlite"
)

type config struct {
	// Path to the SQLite database file. The containing directory is
	// created on first run.
	DatabasePath string `env:"SCHOOL_DB_PATH" envDefault:"data/school.db"`
}

// main is a one-shot schema initializer: it opens (or creates) the database,
// applies any pending migrations, and exits.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("parse environment", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("schema ready", "path", cfg.DatabasePath)
}
