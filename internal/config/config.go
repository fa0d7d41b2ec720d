package config

import (
	"os"
	"strconv"

	"effsample/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
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

// DataConfig holds data ingestion settings
type DataConfig struct {
	DataFile         string  // optional xlsx/csv study file
	MissingSentinel  string  // optional sentinel passed through as missing_indicator
	ConfidenceLevel  float64 // default confidence level for report estimates
	MaxReportResults int     // page size for report listing
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
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			DataFile:         getEnvOrDefault("DATA_FILE", ""),
			MissingSentinel:  getEnvOrDefault("MISSING_SENTINEL", ""),
			ConfidenceLevel:  getEnvFloatOrDefault("CONFIDENCE_LEVEL", 0.95),
			MaxReportResults: getEnvIntOrDefault("MAX_REPORT_RESULTS", 50),
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
	if config.Data.ConfidenceLevel <= 0 || config.Data.ConfidenceLevel >= 1 {
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must lie in (0, 1)")
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
