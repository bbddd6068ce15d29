package config

import (
	"os"
	"path/filepath"

	"gohappy/internal/errors"

	"github.com/joho/godotenv"
)

// DefaultDatasetFile is the bundled World Happiness Report 2020 extract.
const DefaultDatasetFile = "data/WHR20_DataForFigure2.1.csv"

// Config represents the complete application configuration
type Config struct {
	Data DataConfig
	Log  LogConfig
}

// DataConfig holds dataset source settings
type DataConfig struct {
	DatasetFile string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, with optional .env support,
// and validates it.
func Load() (*Config, error) {
	// A missing .env is fine; explicit env vars always win.
	_ = godotenv.Load()

	config := &Config{
		Data: DataConfig{
			DatasetFile: getEnvOrDefault("DATASET_FILE", DefaultDatasetFile),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.DatasetFile == "" {
		return errors.ConfigInvalid("DATASET_FILE must not be empty")
	}
	if ext := filepath.Ext(config.Data.DatasetFile); ext != ".csv" && ext != ".xlsx" {
		return errors.ConfigInvalid("DATASET_FILE must be a .csv or .xlsx file")
	}
	switch config.Log.Level {
	case "ERROR", "WARN", "INFO", "DEBUG":
	default:
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
