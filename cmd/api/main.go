package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/store-locator/internal/config"
	httpDelivery "github.com/store-locator/internal/delivery/http"
	"github.com/store-locator/internal/delivery/http/handler"
	"github.com/store-locator/internal/domain/repository"
	"github.com/store-locator/internal/infrastructure/nominatim"
	"github.com/store-locator/internal/pkg/logger"
	"github.com/store-locator/internal/repository/cache"
	"github.com/store-locator/internal/repository/csvstore"
	"github.com/store-locator/internal/repository/postgres"
	"github.com/store-locator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Store Locator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("stores_source", cfg.Stores.Source),
	)

	// 3. Initialize the store dataset source
	var (
		storeRepo repository.StoreRepository
		db        *postgres.DB
	)

	switch cfg.Stores.Source {
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		storeRepo = postgres.NewStoreRepository(db)
	case "csv":
		storeRepo = csvstore.NewStoreRepository(cfg.Stores.CSVPath, log)
	default:
		log.Fatal("Unknown stores source", zap.String("source", cfg.Stores.Source))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and the geocoding client
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocodeRepo := nominatim.NewClient(&cfg.Geocoder, log)

	// 7. Initialize use case and handlers
	locatorUC := usecase.NewLocatorUseCase(
		storeRepo,
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	storeHandler := handler.NewStoreHandler(locatorUC, log)

	// 8. Initialize HTTP server
	var dbHealth httpDelivery.HealthChecker
	if db != nil {
		dbHealth = db
	}
	server := httpDelivery.NewServer(cfg, log, storeHandler, dbHealth, redisClient)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
