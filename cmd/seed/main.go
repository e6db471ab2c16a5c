package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go-resume-backend/config"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
)

// Loads the demo resume, or with -refresh=<profile|public> rebuilds cached profiles once.
func main() {
	refresh := flag.String("refresh", "", "rebuild cached profiles for scope (profile|public) instead of loading fixtures")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolConfig())
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := database.OpenDB(pool)
	defer db.Close()

	var store cache.Store = cache.NewMemoryStore()
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, cached profiles will not be touched", "error", err)
		} else {
			defer redis.Close()
			store = cache.NewRedisStore(redis.Client(), "resume:")
		}
	}

	repos := postgres.NewRepositories(db)

	if *refresh != "" {
		projection := usecase.NewProjectionUsecase(repos, store, cfg.CacheTTL)
		n, err := usecase.NewCacheRefresher(repos.Resume, projection, store).Refresh(ctx, *refresh)
		if err != nil {
			logger.Log.Error("Cache refresh failed", "scope", *refresh, "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Cache refreshed", "scope", *refresh, "profiles", n)
		return
	}

	summary, err := usecase.LoadFixtures(ctx, repos, store)
	if err != nil {
		logger.Log.Error("Loading fixtures failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Fixtures loaded",
		"user_id", usecase.FixtureUserID,
		"resume_id", summary.ResumeID,
		"experiences", summary.Experiences,
		"education", summary.Education,
		"skills", summary.Skills,
		"languages", summary.Languages,
		"hobbies", summary.Hobbies,
		"projects", summary.Projects,
	)
}
