package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/bp0001/backend/api/v1/database"
	"github.com/bp0001/backend/config"
	"github.com/bp0001/backend/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatal(err)
	}

	err = run(cfg, logg)
	_ = logg.Sync()
	if err != nil {
		log.Fatal(err)
	}
}

var openStore = database.Open

// run owns every resource opened after config and logging, so deferred
// cleanup always happens before main exits.
func run(cfg *config.Config, logg *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logg)
	if err != nil {
		logg.Errorw("failed to open user store", "error", err, "driver", cfg.Store.Driver)
		return fmt.Errorf("open user store: %w", err)
	}
	defer store.Close()

	if err := database.Seed(ctx, store, cfg.Store.SeedUsers, logg); err != nil {
		logg.Errorw("failed to seed users", "error", err)
		return err
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      newRouter(cfg, store, logg),
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logg.Errorw("server failed", "error", err)
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Warnw("server shutdown incomplete", "error", err, "timeout", cfg.Server.ShutdownTimeout)
		return nil
	}
	logg.Infow("server stopped")
	return nil
}
