package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdesk/dispatch/internal/api"
	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/config"
	"flightdesk/dispatch/internal/db"
	"flightdesk/dispatch/internal/jobs"
	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/metrics"
	"flightdesk/dispatch/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Flight Dispatch API
// @version 1.0
// @description Flight scheduling with conflict validation and arrival forecasting.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	if err := logging.Init(logging.Options{
		AppEnv:     cfg.AppEnv,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Dispatch starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	sqlDB, err := db.InitPostgres(cfg.Postgres.DSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	defer sqlDB.Close()
	logging.Info("Connected to Postgres (sqlx)")

	gormDB, err := db.InitPostgresORM(cfg.Postgres.DSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}

	if err := db.Migrate(gormDB); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err.Error())
	}
	logging.Info("Schema migrated")

	tables := common.LoadLookupTables(cfg.AircraftSpeedsFile, cfg.TaxiTimesFile)

	cache := newCache(cfg)
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	deps := api.InitDependencies(cfg, gormDB, sqlDB, cache, tables, metricsReg)

	jobsCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()
	jobs.InitializeJobs(jobsCtx, deps.Services.AirportLoader, cfg.AirportSyncInterval)

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("HTTP server failed", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	logging.Info("Shutting down", "signal", sig.String(), "timeout", cfg.ShutdownTimeout.String())
	stopJobs()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
	logging.Info("Server stopped")
}

// newCache picks the cache backend. A Redis backend that cannot be reached at
// startup falls back to the in-memory cache.
func newCache(cfg config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.Redis)
		if err == nil {
			logging.Info("Using Redis cache", "addr", cfg.Redis.Addr())
			return redisCache
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	logging.Info("Using in-memory cache")
	return common.NewCacheService(3600, 600)
}
