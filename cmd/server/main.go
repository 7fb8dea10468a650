package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tenant-bulk-import/internal/config"
	"tenant-bulk-import/internal/handler"
	"tenant-bulk-import/internal/importer"
	"tenant-bulk-import/internal/infrastructure/database"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/metrics"
	"tenant-bulk-import/internal/middleware"
	"tenant-bulk-import/internal/repository"
	"tenant-bulk-import/internal/service"
	"tenant-bulk-import/internal/storage"
	"tenant-bulk-import/internal/validator"
)

const version = "1.0.0"

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	// Connect to database
	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.MigrationsPath, dbConfig.URL()); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
	}

	pool, err := database.NewPostgres(context.Background(), dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	productRepo := repository.NewPostgresProductRepository(pool)
	jobRepo := repository.NewPostgresJobRepository(pool)

	blobs, err := storage.NewLocalStore(cfg.BlobDir, cfg.BlobFetchTimeout)
	if err != nil {
		logger.Fatal("Failed to open blob store",
			slog.String("error", err.Error()))
	}

	// Import strategies
	v := validator.NewValidator()
	registry := importer.NewRegistry(
		importer.NewUserStrategy(userRepo, v, cfg.UserChunkSize),
		importer.NewProductStrategy(productRepo, v, cfg.ProductChunkSize),
	)

	// Background processing
	workers := service.NewWorkerPool(cfg.WorkerPoolSize, cfg.QueueSize)
	runner := service.NewJobRunner(jobRepo, blobs, registry, service.RunnerConfig{
		JobTimeout:   cfg.JobTimeout,
		StaleAfter:   cfg.StaleJobAfter,
		FetchTimeout: cfg.BlobFetchTimeout,
	})
	workers.Register(service.EventProcessImport, runner.Run)

	sweeper := service.NewRecoverySweeper(jobRepo, workers, cfg.RecoveryInterval, cfg.StaleJobAfter)
	sweeper.Start()

	importService := service.NewImportService(jobRepo, blobs, workers, cfg.MaxUploadBytes)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, cfg.MaxUploadBytes)
	healthHandler := handler.NewHealthHandler(pool, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1", middleware.Tenant())
	{
		imports := v1.Group("/imports")
		{
			imports.POST("", importHandler.CreateImport)
			imports.GET("/:id", importHandler.GetImport)
			imports.POST("/:id/cancel", importHandler.CancelImport)
			imports.GET("/:id/errors", importHandler.ExportErrors)
		}

		v1.GET("/templates/:type", importHandler.Template)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.Int("workers", cfg.WorkerPoolSize))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop taking uploads first
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Running jobs stay processing and are picked up again after restart
	logger.Info("Stopping recovery sweeper")
	sweeper.Stop()
	logger.Info("Closing worker pool")
	workers.Close()

	logger.Info("Server exited")
}
