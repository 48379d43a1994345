package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/booking_ledger_engine/internal/core/services"
	"github.com/SscSPs/booking_ledger_engine/internal/handlers"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Booking Ledger Engine API
// @version 1.0
// @description Stateless booking financials, journal and batch calculations.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(), logger)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Int("max_batch_size", cfg.MaxBatchSize))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
