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

	"go-resume-backend/config"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/commandbus"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/migrations"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/security"
	"go-resume-backend/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title           Resume API
// @version         1.0
// @description     Resume profiles with experiences, education, skills, languages, hobbies and projects.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting resume backend", "port", cfg.Port, "env", cfg.AppEnv)
	securityLogger := security.InitSecurityLogger(cfg.OtelServiceName, cfg.AppEnv)
	defer securityLogger.Sync()

	// 3. Setup Tracing
	shutdownTracing, err := telemetry.Init(ctx, cfg.OtelServiceName)
	if err != nil {
		logger.Log.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	// 4. Setup Database
	poolConfig := database.DefaultPoolConfig()
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, poolConfig)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	db := database.OpenDB(dbPool)
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migrations.Up(ctx, db); err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup Redis (optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory cache and rate limiting", "error", err)
		}
	}
	defer redis.Close()
	redisClient := redis.Client()

	// 6. Setup Metrics and Cache
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var store cache.Store
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient, "resume:")
	} else {
		memory := cache.NewMemoryStore()
		memory.StartJanitor(ctx, time.Minute)
		store = memory
	}
	instrumented, err := cache.Instrument(store, registry)
	if err != nil {
		logger.Log.Error("Failed to register cache metrics", "error", err)
		os.Exit(1)
	}

	// 7. Setup Repositories and UseCases
	repos := postgres.NewRepositories(db)
	deps := usecase.Deps{
		Bus:      commandbus.New(registry),
		Cache:    instrumented,
		CacheTTL: cfg.CacheTTL,
		Audit:    securityLogger,
	}
	resources := usecase.NewResources(repos, deps)
	projectionUC := usecase.NewProjectionUsecase(repos, instrumented, cfg.CacheTTL)
	setupUC := usecase.NewSetupUsecase(repos.Resume, deps)
	exportUC := usecase.NewExportUsecase(projectionUC, securityLogger)

	redisCheck := usecase.HealthCheck(nil)
	if redisClient != nil {
		redisCheck = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": db.PingContext,
		"redis":    redisCheck,
	})

	// 8. Start Cache Refresher
	if cfg.CacheRefreshEnabled {
		usecase.NewCacheRefresher(repos.Resume, projectionUC, instrumented).
			Start(ctx, cfg.CacheRefreshProfileInterval, cfg.CacheRefreshPublicInterval)
	}

	// 9. Setup Auth
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}
	verifier := auth.NewVerifier(cfg.JWTSecret, jwksProvider)

	// 10. Setup Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := v1.NewRouter(v1.RouterDeps{
		Resources:  resources,
		Projection: projectionUC,
		Setup:      setupUC,
		Export:     exportUC,
		Health:     healthUC,
		Verifier:   verifier,
		Config:     cfg,
		Redis:      redisClient,
		Metrics:    registry,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Log.Error("Tracing shutdown failed", "error", err)
	}

	logger.Log.Info("Server exiting")
}
