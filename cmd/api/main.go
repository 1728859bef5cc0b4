package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"task-manager-crud/internal/config"
	"task-manager-crud/internal/logger"
	"task-manager-crud/internal/server"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// waitForShutdown blocks until SIGINT or SIGTERM, drains in-flight requests
// and closes done once the server has released its resources.
func waitForShutdown(srv *server.Server, log *zap.Logger, done chan<- struct{}) {
	defer close(done)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	stop() // a second Ctrl+C kills the process

	log.Info("Shutdown signal received, draining requests", zap.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := srv.Close(); err != nil {
		log.Error("Error closing server resources", zap.Error(err))
	}
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting task manager API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.Bool("rateLimit", cfg.RateLimit.Enabled),
	)

	srv := server.NewServer(cfg, log)

	done := make(chan struct{})
	go waitForShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Server exited")
}
