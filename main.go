package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"aurum/internal/adapter/llm"
	"aurum/internal/config"
	"aurum/internal/logging"
	"aurum/internal/pricing"
	store "aurum/internal/repository"
	"aurum/internal/service"
	handler "aurum/internal/transport/http"
	"aurum/policy"
)

func main() {
	gotenv.Load()

	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting aurum",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("database", cfg.DatabaseURL),
		zap.String("model", cfg.LLMModel),
		zap.String("gold_rate_per_gram_usd", cfg.GoldRatePerGram.String()))

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	defer db.Close()

	// Initialize generation client
	gen := llm.NewGenerator(logger, cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	// Initialize purchase policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.PurchasePolicy)
	if err != nil {
		logger.Fatal("failed to initialize policy engine", zap.Error(err))
	}

	// Initialize pricing engine
	pricer := pricing.NewEngine(cfg.GoldRatePerGram)

	// Initialize service
	svc := service.New(db, gen, pricer, policyEngine, cfg, logger)

	// Create HTTP server
	server := handler.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("API started", zap.Int("port", cfg.HTTPPort))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shut down gracefully", zap.Error(err))
	}

	logger.Info("stopped")
}
