// File: cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"dicefit-api/internal/cache"
	"dicefit-api/internal/config"
	"dicefit-api/internal/database"
	"dicefit-api/internal/handlers"
	"dicefit-api/internal/notify"
	"dicefit-api/internal/repository"
	"dicefit-api/internal/router"
	"dicefit-api/internal/service"
	"dicefit-api/internal/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Version information (set during build)
	version   = handlers.Version
	buildTime = "unknown"
	gitCommit = "unknown"
)

// @title           DiceFit API
// @version         1.0.0
// @description     Fitness tracking backend: accounts, profiles, plans, exercises, trainings and feedback.

// @host      localhost:8080
// @BasePath  /api/dicefit

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// Initialize logger first
	logger := initLogger()

	logger.Info().
		Str("version", version).
		Str("build_time", buildTime).
		Str("git_commit", gitCommit).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Msg("Starting API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	// Set log level based on environment
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(logLevel(cfg))
	log.Logger = logger

	// Database Connection with retry logic
	dbConfig := &database.DatabaseConfig{
		MaxConns:          int32(cfg.DbMaxConns),
		MinConns:          int32(cfg.DbMinConns),
		MaxConnLifetime:   database.DefaultDatabaseConfig().MaxConnLifetime,
		MaxConnIdleTime:   database.DefaultDatabaseConfig().MaxConnIdleTime,
		HealthCheckPeriod: database.DefaultDatabaseConfig().HealthCheckPeriod,
	}

	var db *pgxpool.Pool
	for attempts := 0; attempts < 5; attempts++ {
		db, err = database.ConnectDBWithConfig(cfg.DSN(), dbConfig)
		if err != nil {
			logger.Warn().
				Err(err).
				Int("attempt", attempts+1).
				Msg("Database connection failed, retrying...")

			if attempts < 4 {
				time.Sleep(time.Duration(attempts+1) * 2 * time.Second)
				continue
			}
			logger.Fatal().Err(err).Msg("Database connection failed after all retries")
		}
		break
	}
	defer db.Close()

	// Initialize OpenTelemetry Tracer
	tp, err := telemetry.InitTracerProvider(context.Background(), cfg.OtelEndpoint, version, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize TracerProvider")
	}

	// Application Context
	app := &config.Application{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		Redis:          cache.Connect(cfg, logger),
		TracerProvider: tp,
	}

	if err := database.InitializeSchema(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database schema")
	}
	database.SeedReferenceData(app)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	database.StartConnectionMonitoring(monitorCtx, db)

	notifier, err := notify.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize mail notifier")
	}

	// Wire repositories and services
	credentials := service.NewCredentialService(cfg.JWTSecret, service.WithCost(cfg.BcryptCost))
	services := handlers.Services{
		Auth:     service.NewAuthService(repository.NewAccountRepository(db), credentials, notifier, logger),
		Catalog:  service.NewCatalogService(repository.NewCatalogRepository(db), cache.New(app.Redis, cfg.GetCacheTTL()), logger),
		Training: service.NewTrainingService(repository.NewTrainingRepository(db), logger),
		Feedback: service.NewFeedbackService(repository.NewFeedbackRepository(db)),
	}

	// Seeding may have changed reference data that Redis still holds.
	if cfg.SeedReferenceData {
		if err := services.Catalog.Refresh(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("Failed to refresh catalog cache")
		}
	}

	// Server Setup with production-ready timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.Setup(app, services),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().
			Int("port", cfg.Port).
			Str("env", cfg.App_Env).
			Msg("Starting HTTP server")

		serverErrors <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	case sig := <-quit:
		logger.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal, starting graceful shutdown...")

		gracefulShutdown(srv, app, logger)
	}

	logger.Info().Msg("Server stopped gracefully")
}

// initLogger initializes the global logger
func initLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return log.With().
		Timestamp().
		Caller().
		Logger()
}

// logLevel honours LOG_LEVEL and falls back to debug in development and
// info elsewhere.
func logLevel(cfg config.Config) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		return lvl
	}
	if cfg.IsDevelopment() {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// gracefulShutdown stops accepting requests first, then releases the
// tracer, the database pool and Redis.
func gracefulShutdown(srv *http.Server, app *config.Application, logger zerolog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	srv.SetKeepAlivesEnabled(false)

	logger.Info().Msg("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		logger.Info().Msg("HTTP server shutdown complete")
	}

	logger.Info().Msg("Shutting down OpenTelemetry TracerProvider...")
	if err := app.TracerProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("TracerProvider shutdown error")
	}

	logger.Info().Msg("Closing database connections...")
	app.DB.Close()

	if app.Redis != nil {
		logger.Info().Msg("Closing Redis connections...")
		if err := app.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("Redis shutdown error")
		}
	}

	logger.Info().Msg("Graceful shutdown completed")
}
