package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"datareceiver/internal/app/server"
	"datareceiver/internal/app/server/api"
	"datareceiver/internal/config"
	"datareceiver/internal/infrastructure/storage"
	"datareceiver/internal/utils/logger"
)

func main() {
	conf := config.NewConfig()
	log := logger.New(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, conf, log)
	if err != nil {
		// без хранилища сервис не принимает запросы
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	app := server.New(conf, log, store, api.New(store, log))
	if err := app.Run(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
