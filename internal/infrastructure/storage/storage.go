package storage

import (
	"context"
	"fmt"

	"datareceiver/internal/config"
	"datareceiver/internal/domain/record"
	"datareceiver/internal/infrastructure/storage/postgres"
	"datareceiver/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Storage is the single shared store handle owned by the process lifecycle.
type Storage interface {
	Records() record.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New bootstraps the schema and opens the backend selected by cfg.DB.Driver.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	log = log.With("component", "storage", "driver", cfg.DB.Driver)

	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		st, err := sqlite.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		log.Info("connected to the SQLite database", "path", cfg.DB.Path)
		return st, nil
	case config.DriverPostgres:
		st, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		log.Info("connected to the PostgreSQL database")
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
}
