package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"datareceiver/internal/config"
	"datareceiver/internal/domain/record"
	"datareceiver/internal/infrastructure/migration"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New применяет схему и открывает файл базы (создавая его при отсутствии).
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	if err := migration.NewMigration(cfg, nil).Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DB.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite допускает одного писателя, запросы сериализуются через одно соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Records() record.Repository {
	return NewRecordRepository(s.db, s.log)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
