package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"datareceiver/internal/config"
	"datareceiver/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

const readHeaderTimeout = 5 * time.Second

// App владеет HTTP сервером и хранилищем на время жизни процесса.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	store storage.Storage
	srv   *http.Server
}

func New(cfg *config.Config, log *slog.Logger, store storage.Storage, handler http.Handler) *App {
	return &App{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
		srv: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Run слушает cfg.Server.RunAddress до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.srv.Addr)
	if err != nil {
		a.closeStore()
		return fmt.Errorf("listen %s: %w", a.srv.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает ln, при отмене ctx останавливает сервер и закрывает хранилище.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.closeStore()

	a.log.Info(fmt.Sprintf("Server listening on http://%s", displayAddr(ln.Addr())))

	errCh := make(chan error, 1)
	go func() {
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

// ошибка закрытия только логируется
func (a *App) closeStore() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close database", "error", err)
		return
	}
	a.log.Info("database connection closed")
}

func displayAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return addr.String()
	}
	if tcp.IP.IsUnspecified() {
		return fmt.Sprintf("localhost:%d", tcp.Port)
	}
	return tcp.String()
}
