package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-resume-backend/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	FrontendURL string
	// Database
	DBUrl       string
	DBMaxConns  int
	AutoMigrate bool
	// Auth
	JWTSecret string
	JWKSURL   string
	// Redis
	RedisURL      string
	RedisPassword string
	// Cache
	CacheTTL                    time.Duration
	CacheRefreshEnabled         bool
	CacheRefreshProfileInterval time.Duration
	CacheRefreshPublicInterval  time.Duration
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitFailClosed      bool
	// Tracing
	OtelServiceName string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; a missing .env is ignored.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		DBUrl:       getEnv("DATABASE_URL", ""),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 25),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", false),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWKSURL:   getEnv("JWKS_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		CacheTTL:                    time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CacheRefreshEnabled:         getEnvBool("CACHE_REFRESH_ENABLED", true),
		CacheRefreshProfileInterval: getEnvDuration("CACHE_REFRESH_PROFILE_INTERVAL", 10*time.Minute),
		CacheRefreshPublicInterval:  getEnvDuration("CACHE_REFRESH_PUBLIC_INTERVAL", time.Hour),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitFailClosed:      getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),

		OtelServiceName: getEnv("OTEL_SERVICE_NAME", "resume-api"),
	}

	if cfg.DBUrl == "" {
		logger.Log.Warn("DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		logger.Log.Warn("REDIS_URL not configured. Cache and rate limiting will use in-memory fallback.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		logger.Log.Warn("Neither JWT_SECRET nor JWKS_URL is set. Authenticated routes will reject every token.")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("90s", "10m") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
