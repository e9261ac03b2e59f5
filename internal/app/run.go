package app

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"webhook-guard/internal/common/logging"
	"webhook-guard/internal/config"
)

// Run is the main entry point for the application
func Run() error {
	// Load environment variables
	_ = godotenv.Load()

	// Set up CPU usage
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Load configuration, then bring up logging with its settings
	cfg := config.Load()

	logging.InitGlobalLogger(cfg.LogLevel, cfg.LogFile)
	defer logging.MustSync()

	logging.Info("Starting webhook guard",
		logging.Field{Key: "cpus", Value: runtime.NumCPU()},
		logging.Field{Key: "version", Value: "1.0.0"},
	)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logging.Error("Configuration validation failed", err)
		return err
	}

	// Initialize application
	app, err := New(cfg)
	if err != nil {
		logging.Error("Failed to initialize application", err)
		return err
	}

	// Start server
	srv := app.RunServer()
	if err := srv.Start(); err != nil {
		logging.Error("Server failed to start", err)
		return err
	}

	logging.Info("Server listening",
		logging.Field{Key: "port", Value: cfg.Port},
		logging.Field{Key: "tls", Value: cfg.TLSCertFile != ""},
		logging.Field{Key: "metrics", Value: cfg.MetricsEnabled},
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", err)
		return err
	}

	logging.Info("Server exited")
	return nil
}
