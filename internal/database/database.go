// Package database opens the configured store.Store implementation.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/log"
	"spendwise-backend/internal/store"
	"spendwise-backend/internal/store/postgres"
	"spendwise-backend/internal/store/sqlite"
)

// Open connects to the database selected by DB_DRIVER and applies migrations.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	logger = log.WithComponent(logger, log.ComponentStorage)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		st, err := postgres.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		logger.Info("connected to postgres",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Name))
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		logger.Info("opened sqlite database", slog.String("path", cfg.Database.SQLitePath))
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}
