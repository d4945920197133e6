package main

import (
	"context"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
	"os/signal"
	"package-tracking-service/config"
	"package-tracking-service/core"
	"package-tracking-service/workers/shipments"
	"package-tracking-service/workers/shipments/repositories"
	"syscall"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	repo := repositories.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orchestrator := core.NewOrchestrator(logger, []core.Worker{
		shipments.NewWorker(logger, cfg, repo),
	})

	c, err := orchestrator.Start(ctx)
	if err != nil {
		logger.Fatal("Failed to start orchestrator", zap.Error(err))
	}

	logger.Info("Package tracking service started")

	// Wait for termination signal to exit gracefully
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	cancel()
	<-c.Stop().Done()
	logger.Info("Package tracking service stopped")
}
