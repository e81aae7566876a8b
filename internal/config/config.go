package config

import (
	"os"
	"strconv"

	"statq/adapters/stats"
	"statq/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Analysis AnalysisConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig carries the statistical defaults. Each is overridable per
// request; these are the fallbacks handed to the analysis service.
type AnalysisConfig struct {
	ConfidenceLevel stats.ConfidenceLevel
	IQRMultiplier   float64
	ZScoreThreshold float64
	TrendWindowDays int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Analysis: AnalysisConfig{
			ConfidenceLevel: stats.ConfidenceLevel(getEnvIntOrDefault("CONFIDENCE_LEVEL", 95)),
			IQRMultiplier:   getEnvFloatOrDefault("IQR_MULTIPLIER", stats.DefaultIQRMultiplier),
			ZScoreThreshold: getEnvFloatOrDefault("ZSCORE_THRESHOLD", stats.DefaultZScoreThreshold),
			TrendWindowDays: getEnvIntOrDefault("TREND_WINDOW_DAYS", 30),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	switch config.Analysis.ConfidenceLevel {
	case stats.Confidence90, stats.Confidence95, stats.Confidence99:
	default:
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must be 90, 95 or 99")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
