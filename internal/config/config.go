package config

import (
	"os"
	"strconv"

	"stratasample/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
	Sampling SamplingConfig
}

// DatabaseConfig holds audit ledger connection settings.
// An empty URL disables persistence (the CLI works entirely from files).
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds ingestion settings
type DataConfig struct {
	InputFile     string
	SheetName     string
	IDColumn      string
	StratumColumn string
	CostColumn    string
}

// SamplingConfig holds default run settings overridable per request
type SamplingConfig struct {
	BaseSeed int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			InputFile:     getEnvOrDefault("INPUT_FILE", ""),
			SheetName:     getEnvOrDefault("SHEET_NAME", "Sheet1"),
			IDColumn:      getEnvOrDefault("ID_COLUMN", "id"),
			StratumColumn: getEnvOrDefault("STRATUM_COLUMN", "stratum"),
			CostColumn:    getEnvOrDefault("COST_COLUMN", "cost"),
		},
		Sampling: SamplingConfig{
			BaseSeed: getEnvInt64OrDefault("BASE_SEED", 42),
		},
	}

	if cfg.Server.Port == "" {
		return nil, core.NewInvalidParametersError("PORT must not be empty")
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
