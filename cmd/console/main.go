package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godilite/ride-insights/internal/config"
	"github.com/godilite/ride-insights/internal/console"
	"github.com/godilite/ride-insights/internal/repository"
	"github.com/godilite/ride-insights/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr at warn and above so they do not interleave with the menu.
	cfg.LogLevel = "warn"
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbOpts, err := cfg.DatabaseOptions()
	if err != nil {
		logger.Fatal("Invalid database configuration", zap.Error(err))
	}
	handle := repository.Open(ctx, logger, dbOpts...)
	defer handle.Close()

	dashboard := service.NewDashboardService(handle, logger, service.WithQueryTimeout(cfg.QueryTimeout))

	if err := console.New(dashboard, os.Stdin, os.Stdout, logger).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Console exited with error", zap.Error(err))
	}
}
