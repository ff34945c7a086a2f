package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"datareceiver/internal/config"

	"github.com/golang-migrate/migrate/v4"
	// Blank import registers the postgres driver used by URL
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

const sqliteURIPrefix = "file:"

// DefaultEngine - реальная реализация поверх встроенных SQL файлов
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	if strings.HasPrefix(databaseURL, sqliteURIPrefix) {
		return sqliteEngine(src, databaseURL)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// sqliteEngine открывает соединение по DSN сам: sqlite3:// URL у migrate теряет экранирование пути.
// Соединение закрывает Migrator.Close.
func sqliteEngine(src source.Driver, dsn string) (Migrator, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite for migration: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = driver.Close()
		return nil, err
	}
	return m, nil
}

// Target возвращает каталог миграций и URL базы для настроенного драйвера
func Target(cfg *config.Config) (dir string, databaseURL string, err error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		if cfg.DB.Path == "" {
			return "", "", errors.New("sqlite path is empty")
		}
		return "migrations/sqlite", cfg.DB.SQLiteDSN(), nil
	case config.DriverPostgres:
		if cfg.DB.DatabaseURI == "" {
			return "", "", errors.New("database uri is empty")
		}
		return "migrations/postgres", cfg.DB.DatabaseURI, nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
}

// Up применяет миграции. Повторный вызов на актуальной схеме не является ошибкой.
func (mg *Migration) Up() (err error) {
	dir, databaseURL, err := Target(mg.cfg)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("open migrations %s: %w", dir, err)
	}

	m, err := mg.engine(src, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
