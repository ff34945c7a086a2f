package client

import (
	"context"
	"fmt"

	"datareceiver/internal/app/client/config"
	"datareceiver/internal/domain/record"

	"golang.org/x/exp/slog"
)

// App связывает конфигурацию клиента с HTTP транспортом
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("конфигурация не задана")
	}
	if log == nil {
		log = slog.Default()
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
	}, nil
}

// ServerAddress возвращает базовый адрес сервера
func (a *App) ServerAddress() string {
	return a.config.BaseURL()
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// Send проверяет поля локально и отправляет запись
func (a *App) Send(ctx context.Context, sub record.Submission) (*record.Record, error) {
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("id, origin и data обязательны: %w", err)
	}

	rec, err := a.httpClient.Submit(ctx, sub)
	if err != nil {
		return nil, err
	}

	a.log.Debug("Запись отправлена", "id", sub.ID)
	return rec, nil
}

// ListRecords получает записи с сервера
func (a *App) ListRecords(ctx context.Context, filter record.Filter) ([]record.Record, error) {
	return a.httpClient.List(ctx, filter)
}
