package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"sunsip.app/internal/app"
	"sunsip.app/internal/config"
	"sunsip.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.NewWithWriter(os.Stdout, logger.ParseLevel(cfg.Logging.Level), cfg.Logging.Format).
		WithField("service", "sunsip").
		SetDefault()
	slog.Info("Configuration loaded successfully")
	slog.Info("Server configuration", "port", cfg.Server.Port, "baseURL", cfg.AppBaseURL, "cache", cfg.Cache.Type.String())

	application, err := app.NewApplication(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting SunSip API...")
	startErr := application.Start(ctx)
	if startErr != nil {
		slog.Error("Application stopped with error", "error", startErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
	}

	if startErr != nil {
		os.Exit(1)
	}
}
