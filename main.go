package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ophelia-market/cmd"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/wire"
	"ophelia-market/pkg/cache"
	"ophelia-market/pkg/database"
	"ophelia-market/pkg/storage"
	"ophelia-market/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.RunMigrations(ctx, db, database.Migrations, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Session cache, optional
	redisCache := cache.InitRedis(config.Redis, logger)
	defer func() { _ = redisCache.Close() }()
	sessions := cache.NewSessionStore(redisCache, config.Session.Namespace)

	store, err := buildStorage(ctx, config.Storage)
	if err != nil {
		logger.Fatal("Failed to set up image storage", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:     repos,
		Sessions: sessions,
		Storage:  store,
		Registry: registry,
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	logger.Info("bye")
}

func buildStorage(ctx context.Context, config utils.StorageConfig) (storage.Storage, error) {
	switch config.Driver {
	case "s3":
		return storage.NewS3Storage(ctx, config)
	case "local", "":
		return storage.NewLocalStorage(config.LocalDir, config.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
