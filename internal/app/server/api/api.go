// POST /data            # Принять запись {id, origin, mime_data}
// GET  /data            # Список записей (?origin=&date=YYYY-MM-DD), HTML или JSON
// GET  /api/v1/health   # Проверка сервиса и хранилища
// GET  /metrics         # Prometheus

package api

import (
	healthAPI "datareceiver/internal/app/server/api/http/health"
	"datareceiver/internal/app/server/api/http/middleware"
	"datareceiver/internal/app/server/api/http/middleware/logger"
	metricsMW "datareceiver/internal/app/server/api/http/middleware/metrics"
	"datareceiver/internal/app/server/api/http/middleware/requestid"
	recordAPI "datareceiver/internal/app/server/api/http/record"
	"datareceiver/internal/domain/record"
	"datareceiver/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(st storage.Storage, log *slog.Logger, opts ...record.Option) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Data Receiver API", "1.0.0")
	// ответы без поля $schema, тела совпадают с документированным форматом
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	h := handlers(st, log, opts...)
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func handlers(st storage.Storage, log *slog.Logger, opts ...record.Option) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(st, log, middlewares.GetAllAndClear())

	recordService := record.NewService(st.Records(), log, opts...)
	middlewares.Add(requestid.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
	}
}
