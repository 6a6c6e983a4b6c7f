package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TJZine/CertPrep.ai-sub000/internal/server/config"
	"github.com/TJZine/CertPrep.ai-sub000/internal/server/handlers"
	"github.com/TJZine/CertPrep.ai-sub000/internal/server/middleware"
	"github.com/TJZine/CertPrep.ai-sub000/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := sqlite.New(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	syncHandler := handlers.NewSyncHandler(logger, storage, cfg.MaxPageSize)
	healthHandler := handlers.NewHealthHandler(logger)

	identity := middleware.IdentityMiddleware(logger)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/sync/{resource}", identity(http.HandlerFunc(syncHandler.HandleSync)))
	mux.HandleFunc("/api/v1/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"})(
			middleware.MetricsMiddleware()(mux),
		),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Sync server listening", "address", cfg.ListenAddress, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("CertPrep Sync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
