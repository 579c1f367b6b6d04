package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"listify/internal/brand"
	"listify/internal/config"
	"listify/internal/database"
	"listify/internal/generator"
	"listify/internal/logger"
	"listify/internal/validator"
	"listify/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Wire the pipeline: generation client, validator with the catalog
	// brand lookup, event processor.
	client := generator.New(cfg, logger)
	v := validator.New(logger, brand.NewCatalog(db.DB))
	processor := worker.NewProcessor(db.DB, logger, client, v, cfg.GenerationModels)

	// Initialize worker
	w := worker.New(cfg, logger, processor)

	// Start worker
	logger.Info("Starting worker...")
	go w.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	w.Stop()
}
