package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/TechSynnovate-com/Rentnova-sub002/config"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/api"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/database"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/matching"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/processor"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/queue"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	dbPath := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", dbPath)

	db, err := database.NewDatabase(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	gormDB, err := database.OpenGorm(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open write-path handle")
	}

	// Ingest pipeline: queue feeding the batch processor
	ingestQueue := queue.NewListingQueue(cfg.BatchProcessing.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(gormDB, ingestQueue, cfg, logger)
	batchProcessor.Start()
	ingestQueue.Start()
	defer func() {
		batchProcessor.Stop()
		if err := ingestQueue.Close(); err != nil {
			logger.WithError(err).Error("Failed to close ingest queue")
		}
	}()

	weights := matching.DefaultWeights()
	if cfg.Scoring.WeightsPath != "" {
		weights, err = config.LoadWeightsFromFile(cfg.Scoring.WeightsPath)
		if err != nil {
			logger.WithError(err).Warn("Falling back to default scoring weights")
		} else {
			logger.WithField("weights", weights).Info("Loaded scoring weight overrides")
		}
	}

	handler := api.NewHandler(db, ingestQueue, logger, cfg.Scoring.Workers, weights)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	api.SetupRoutes(router, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
