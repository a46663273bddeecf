// Package main is the entry point for the Finance Tracker Analytics API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/analytics/config"
	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/infra/cache"
	"github.com/finance-tracker/analytics/internal/infra/db"
	"github.com/finance-tracker/analytics/internal/infra/dependency"
	resultcache "github.com/finance-tracker/analytics/internal/integration/cache"
	"github.com/finance-tracker/analytics/internal/integration/catalog"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/analytics/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Finance Tracker Analytics API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Load plan template catalog
	templates, err := catalog.LoadFile(cfg.Engine.TemplateCatalogPath)
	if err != nil {
		slog.Error("Failed to load plan template catalog",
			"path", cfg.Engine.TemplateCatalogPath,
			"error", err,
		)
		os.Exit(1)
	}
	slog.Info("Plan template catalog loaded", "templates", templates.Len())

	// Connect result cache (optional)
	var resultCache adapter.ResultCache
	var probes []controller.HealthProbe
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without result cache", "error", err)
		} else {
			resultCache = resultcache.NewRedisResultCache(redisClient)
			probes = append(probes, controller.HealthProbe{
				Name:  "result_cache",
				Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
			})
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	if cfg.AI.GeminiAPIKey == "" {
		slog.Warn("Gemini API key not set, debt explanations use the built-in summary")
	}

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), templates, dependency.Options{
		ResultCache: resultCache,
		Probes:      probes,
	})
	engine := injector.Router.Setup(cfg.Server.Environment)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go injector.RateLimiter.RunCleanup(cleanupCtx)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
