package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Processing  ProcessingConfig
	RateLimit   RateLimitConfig
}

// ProcessingConfig holds the enrollment pipeline tunables
type ProcessingConfig struct {
	RequestDelay        time.Duration
	PersistDelay        time.Duration
	NotifyDelay         time.Duration
	ProcessingTimeLabel string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PROCESSING_DELAY_MS", 1000)
	viper.SetDefault("PERSIST_DELAY_MS", 500)
	viper.SetDefault("NOTIFY_DELAY_MS", 300)
	viper.SetDefault("PROCESSING_TIME_LABEL", "2 seconds")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Processing: ProcessingConfig{
			RequestDelay:        time.Duration(viper.GetInt("PROCESSING_DELAY_MS")) * time.Millisecond,
			PersistDelay:        time.Duration(viper.GetInt("PERSIST_DELAY_MS")) * time.Millisecond,
			NotifyDelay:         time.Duration(viper.GetInt("NOTIFY_DELAY_MS")) * time.Millisecond,
			ProcessingTimeLabel: viper.GetString("PROCESSING_TIME_LABEL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			BurstSize:         viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
