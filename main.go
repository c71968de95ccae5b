// main.go
package main

import (
	"context"
	"log"
	"time"

	"umrah-booking/cmd"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/jobs"
	"umrah-booking/internal/wire"
	"umrah-booking/pkg/cache"
	"umrah-booking/pkg/database"
	"umrah-booking/pkg/mailer"
	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	store, err := storage.New(config.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err))
	}

	// The dashboard falls back to the database when redis is not configured or unreachable.
	dashboardCache := cache.NewNoop()
	if config.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		rdb, err := cache.ConnectRedis(ctx, config.Redis)
		cancel()
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			dashboardCache = cache.NewRedis(rdb, config.App.Name+":")
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		}
	}

	scheduler := jobs.NewScheduler(repos, logger)
	if err := scheduler.Register(config.Cron); err != nil {
		logger.Fatal("Failed to schedule cron jobs", zap.Error(err))
	}
	scheduler.Start()

	app := wire.Wiring(wire.Deps{
		Repo:    repos,
		Storage: store,
		Mailer:  mailer.New(config.Email, logger),
		Cache:   dashboardCache,
	}, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger, scheduler.Stop); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}
