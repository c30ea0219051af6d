package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/config"
	"github.com/jonleinena/happyrobot-interview/internal/fmcsa"
	"github.com/jonleinena/happyrobot-interview/internal/observer"
	"github.com/jonleinena/happyrobot-interview/internal/server"
	"github.com/jonleinena/happyrobot-interview/internal/storage"
	"github.com/jonleinena/happyrobot-interview/internal/usecase"
	"github.com/jonleinena/happyrobot-interview/pkg/logger"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

func main() {
	// Set timezone to UTC
	time.Local = time.UTC

	// Load configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	observer.InitMetrics(cfg.Metrics.Enabled)

	logger.Log.Info("Starting Carrier Engagement API",
		zap.String("environment", cfg.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	if cfg.Auth.APIKey == "" {
		logger.Log.Warn("API_KEY is not configured; authorized endpoints will reject all requests")
	}
	if cfg.FMCSA.APIKey == "" {
		logger.Log.Warn("FMCSA_API_KEY is not configured; carrier verification will report FAIL")
	}

	// Initialize repositories
	postgresRepo, err := storage.NewPostgresRepo(cfg.Database.PostgresDSN, cfg.Database.PostgresAutoMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize Postgres repository", zap.Error(err))
	}

	// Create repository adapters for the service
	loadRepo := storage.NewLoadRepoAdapter(postgresRepo)
	callLogRepo := storage.NewCallLogRepoAdapter(postgresRepo)
	offerRepo := storage.NewCarrierOfferRepoAdapter(postgresRepo)

	if cfg.Database.SeedSampleLoads {
		if err := storage.SeedSampleLoads(context.Background(), loadRepo); err != nil {
			logger.Log.Fatal("Failed to seed sample loads", zap.Error(err))
		}
	}

	// FMCSA registry client
	verifier := fmcsa.NewClient(cfg.FMCSA.BaseURL, cfg.FMCSA.APIKey, cfg.FMCSA.Timeout)

	// Create service and HTTP server
	service := usecase.NewService(loadRepo, callLogRepo, offerRepo, verifier)
	srv := server.NewServer(cfg, service, postgresRepo, logger.Log)
	srv.Start()

	logger.Log.Info("Endpoints available",
		zap.String("health", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)),
		zap.String("dashboard", fmt.Sprintf("http://localhost:%d/offers/dashboard", cfg.Server.Port)),
	)

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Log.Info("Received termination signal", zap.String("signal", sig.String()))

	// Graceful shutdown with timeout
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	logger.Log.Info("Starting graceful shutdown", zap.Duration("timeout", shutdownTimeout))

	var wg sync.WaitGroup
	wg.Add(2)

	// Shutdown HTTP server
	utils.SafeGo(func() {
		defer wg.Done()
		logger.Log.Info("[shutdown] Stopping HTTP server")
		start := time.Now()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Log.Error("[shutdown] HTTP server shutdown error", zap.Error(err))
		}
		logger.Log.Info("[shutdown] HTTP server stopped",
			zap.Duration("duration", time.Since(start)))
	}, func(r interface{}, stack []byte) {
		logger.Log.Error("[shutdown] Panic while stopping HTTP server",
			zap.Any("panic", r),
			zap.ByteString("stack", stack),
		)
		wg.Done()
	})

	// Close database connection
	utils.SafeGo(func() {
		defer wg.Done()
		logger.Log.Info("[shutdown] Closing database connection")
		start := time.Now()
		if err := postgresRepo.Close(shutdownCtx); err != nil {
			logger.Log.Error("[shutdown] Database close error", zap.Error(err))
		}
		logger.Log.Info("[shutdown] Database connection closed",
			zap.Duration("duration", time.Since(start)))
	}, func(r interface{}, stack []byte) {
		logger.Log.Error("[shutdown] Panic while closing database",
			zap.Any("panic", r),
			zap.ByteString("stack", stack),
		)
		wg.Done()
	})

	// Wait for all components with a hard deadline
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Log.Info("Graceful shutdown complete")
	case <-shutdownCtx.Done():
		logger.Log.Warn("Shutdown deadline exceeded, exiting")
	}
}
