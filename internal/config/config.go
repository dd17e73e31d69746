// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir          string // Base directory for the journal database (defaults to "./data")
	TradesFile       string // Optional trades.json snapshot imported on first boot
	LogLevel         string
	SnapshotSchedule string // Cron expression for the daily metrics snapshot job
	Port             int
	DevMode          bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "")
	if dataDir == "" {
		if _, err := os.Stat("../data"); err == nil {
			dataDir = "../data"
		} else {
			dataDir = "./data"
		}
	}

	cfg := &Config{
		DataDir:          dataDir,
		TradesFile:       getEnv("TRADES_FILE", ""),
		Port:             getEnvAsInt("PORT", 8080),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 5 0 * * *"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// JournalDBPath returns the path of the journal database file
func (c *Config) JournalDBPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
