package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string   `mapstructure:"RATE_LIMIT"` // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MaxBatchSize       int      `mapstructure:"MAX_BATCH_SIZE"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_BATCH_SIZE", 1000)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel.String())
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to 100-M.\n", cfg.RateLimit)
		cfg.RateLimit = "100-M"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.MaxBatchSize = v.GetInt("MAX_BATCH_SIZE")
	if cfg.MaxBatchSize < 0 {
		log.Printf("Warning: Invalid value for MAX_BATCH_SIZE (%d). Batch size will not be limited.\n", cfg.MaxBatchSize)
		cfg.MaxBatchSize = 0
	}

	return cfg
}
