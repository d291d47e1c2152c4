package main

import (
	"log"

	"laundry-booking/cmd"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/wire"
	"laundry-booking/pkg/utils"

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
		zap.Bool("strict_commit", config.Session.StrictCommit),
		zap.Bool("strict_dates", config.Session.StrictDates),
	)

	// Initialize all repositories
	repos, err := repository.NewRepository(config.Session.CacheSize, logger)
	if err != nil {
		logger.Fatal("Failed to initialize repositories", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
