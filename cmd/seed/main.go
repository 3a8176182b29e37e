// Command seed bulk-loads the Ola rides CSV export into the ola_data table.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/godilite/ride-insights/internal/config"
	"github.com/godilite/ride-insights/internal/importer"
	"github.com/godilite/ride-insights/internal/repository/models"
	dbbuilder "github.com/godilite/ride-insights/pkg/database"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	csvPath := flag.String("csv", "Bookings.csv", "path to the rides CSV export")
	replace := flag.Bool("replace", false, "drop and recreate the table before loading")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	dbOpts, err := cfg.DatabaseOptions()
	if err != nil {
		logger.Fatal("Invalid database configuration", zap.Error(err))
	}
	db, err := dbbuilder.New(ctx, dbOpts...)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()

	dialect, err := importer.DialectFor(cfg.DBDriver)
	if err != nil {
		logger.Fatal("Unsupported database driver", zap.Error(err))
	}

	if err := importer.CreateSchema(ctx, db, dialect, *replace); err != nil {
		logger.Fatal("Schema creation failed", zap.Error(err))
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal("Cannot open CSV", zap.String("path", *csvPath), zap.Error(err))
	}
	defer f.Close()

	start := time.Now()
	n, err := importer.ImportCSV(ctx, db, dialect, f)
	if err != nil {
		logger.Fatal("Import failed", zap.Error(err))
	}

	logger.Info("Data uploaded successfully",
		zap.Int("rows", n),
		zap.String("table", models.Table),
		zap.Duration("elapsed", time.Since(start)))
}
