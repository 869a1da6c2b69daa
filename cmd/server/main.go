package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dominionleague/internal/config"
	"dominionleague/internal/logger"
)

const (
	limiterEvictEvery = time.Minute
	limiterIdle       = 10 * time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, ""); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, _ := logger.ParseLevel(cfg.Server.LogLevel) // validated by LoadConfig
	log := logger.New(logger.Config{Format: cfg.Server.LogFormat, Level: level})
	slog.SetDefault(log)

	a, err := setupApp(cfg, log)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      a.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go evictIdleClients(ctx, a, log)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server gracefully stopped")
	return nil
}

func evictIdleClients(ctx context.Context, a *app, log *slog.Logger) {
	ticker := time.NewTicker(limiterEvictEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.rateLimiter.Evict(limiterIdle); n > 0 {
				log.Debug("evicted idle rate limiters", "count", n)
			}
		}
	}
}
