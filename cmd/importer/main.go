package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/store-locator/internal/config"
	"github.com/store-locator/internal/pkg/logger"
	"github.com/store-locator/internal/repository/csvstore"
	"github.com/store-locator/internal/repository/postgres"
)

// The importer loads the CSV store dataset into PostgreSQL so the API
// can serve from the database instead of the file.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting store dataset import",
		zap.String("csv_path", cfg.Stores.CSVPath),
	)

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	csvRepo := csvstore.NewStoreRepository(cfg.Stores.CSVPath, log)
	stores, err := csvRepo.GetAll(ctx)
	if err != nil {
		log.Fatal("Failed to load CSV dataset", zap.Error(err))
	}
	if len(stores) == 0 {
		log.Fatal("CSV dataset is empty, refusing to truncate the stores table")
	}

	storeRepo := postgres.NewStoreRepository(db)
	if err := storeRepo.ReplaceAll(ctx, stores); err != nil {
		log.Fatal("Failed to import stores", zap.Error(err))
	}

	log.Info("Import completed", zap.Int("stores", len(stores)))
}
