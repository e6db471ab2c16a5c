package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CACHE_TTL_SECONDS", "CACHE_REFRESH_PROFILE_INTERVAL", "AUTO_MIGRATE", "FRONTEND_URL"} {
		t.Setenv(k, "")
	}
	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_URL", "http://localhost:3000/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, 10*time.Minute, cfg.CacheRefreshProfileInterval)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CACHE_REFRESH_PUBLIC_INTERVAL", "30m")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_FAIL_CLOSED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 30*time.Minute, cfg.CacheRefreshPublicInterval)
	assert.Equal(t, 7, cfg.DBMaxConns)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.RateLimitFailClosed)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("D_GO", "90s")
	t.Setenv("D_SECS", "120")
	t.Setenv("D_BAD", "soon")

	assert.Equal(t, 90*time.Second, getEnvDuration("D_GO", time.Hour))
	assert.Equal(t, 2*time.Minute, getEnvDuration("D_SECS", time.Hour))
	assert.Equal(t, time.Hour, getEnvDuration("D_BAD", time.Hour))
	assert.Equal(t, time.Hour, getEnvDuration("D_UNSET_FOR_TEST", time.Hour))
}

func TestGetEnvIntAndBool(t *testing.T) {
	t.Setenv("I_OK", "42")
	t.Setenv("I_BAD", "x")
	t.Setenv("B_OK", "false")

	assert.Equal(t, 42, getEnvInt("I_OK", 1))
	assert.Equal(t, 1, getEnvInt("I_BAD", 1))
	assert.False(t, getEnvBool("B_OK", true))
	assert.True(t, getEnvBool("B_UNSET_FOR_TEST", true))
}
