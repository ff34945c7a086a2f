package config

import (
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	Driver      string
	Path        string
	DatabaseURI string
}

// SQLiteDSN - URI файла базы для go-sqlite3. Путь экранируется, ? и # в DB_PATH остаются частью имени файла.
func (d db) SQLiteDSN() string {
	return "file:" + (&url.URL{Path: d.Path}).EscapedPath() + "?_journal_mode=WAL&_busy_timeout=5000"
}

type server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
}

type logger struct {
	LogLevel string
}

// Defaults mirror the fixed values the service historically ran with.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_path", "received_data.db")
	v.SetDefault("database_uri", "")
	v.SetDefault("run_address", ":3000")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
}

func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return FromViper(viper.GetViper())
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	setDefaults(v)
	v.AutomaticEnv()

	config := Config{
		Env: v.GetString("app_env"),
		DB: db{
			Driver:      v.GetString("db_driver"),
			Path:        v.GetString("db_path"),
			DatabaseURI: v.GetString("database_uri"),
		},
		Server: server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
	}

	return &config
}
