// Seeder populates the load board: the fixed demo loads plus an optional
// number of randomly generated ones. Safe to run repeatedly; existing load
// IDs are skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/config"
	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/internal/storage"
	"github.com/jonleinena/happyrobot-interview/internal/validator"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
)

func main() {
	time.Local = time.UTC

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dsn := flag.String("dsn", cfg.Database.PostgresDSN, "Postgres DSN")
	randomCount := flag.Int("random", 0, "Number of extra randomly generated loads")
	migrate := flag.Bool("migrate", true, "Run schema auto-migration before seeding")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	if err := logger.Initialize(*logLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	postgresRepo, err := storage.NewPostgresRepo(*dsn, *migrate)
	if err != nil {
		logger.Log.Fatal("Failed to connect to Postgres", zap.Error(err))
	}

	ctx := context.Background()
	loadRepo := storage.NewLoadRepoAdapter(postgresRepo)

	if err := storage.SeedSampleLoads(ctx, loadRepo); err != nil {
		logger.Log.Fatal("Failed to seed sample loads", zap.Error(err))
	}

	generated := 0
	for i := 0; i < *randomCount; i++ {
		load := model.NewRandomLoad(&model.Load{
			LoadID: fmt.Sprintf("GEN%05d", i+1),
		})
		if err := validator.Validate(load); err != nil {
			logger.Log.Warn("Skipping invalid generated load",
				zap.String("load_id", load.LoadID), zap.Error(err))
			continue
		}
		if err := loadRepo.Save(ctx, *load); err != nil {
			logger.Log.Warn("Skipping generated load",
				zap.String("load_id", load.LoadID), zap.Error(err))
			continue
		}
		generated++
	}

	logger.Log.Info("Seeding complete", zap.Int("generated", generated))

	if err := postgresRepo.Close(ctx); err != nil {
		logger.Log.Warn("Failed to close database connection", zap.Error(err))
	}
}
