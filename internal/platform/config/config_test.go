package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "LOG_LEVEL", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "MAX_BATCH_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MAX_BATCH_SIZE", "25")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 25, cfg.MaxBatchSize)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "")
	v.Set("LOG_LEVEL", "chatty")
	v.Set("RATE_LIMIT", "lots")
	v.Set("CORS_ALLOWED_ORIGINS", " , ")
	v.Set("MAX_BATCH_SIZE", -3)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 0, cfg.MaxBatchSize)
}
