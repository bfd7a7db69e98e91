// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath    string
	LogPath         string
	ReminderEnabled bool
	ReminderHour    int
	ChartWeeks      int
	TickInterval    time.Duration
}

// Default values
const (
	defaultReminderHour = 20
	defaultChartWeeks   = 12
	defaultTickInterval = 2 * time.Second
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatabasePath:    getEnvString("BJJ_DATABASE_PATH", getDefaultDatabasePath()),
		LogPath:         getEnvString("BJJ_LOG_PATH", getDefaultLogPath()),
		ReminderEnabled: getEnvBool("BJJ_REMINDER", true),
		ReminderHour:    getEnvInt("BJJ_REMINDER_HOUR", defaultReminderHour),
		ChartWeeks:      getEnvInt("BJJ_CHART_WEEKS", defaultChartWeeks),
		TickInterval:    getEnvDuration("BJJ_TICK_INTERVAL", defaultTickInterval),
	}

	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("BJJ_REMINDER_HOUR must be 0-23, got %d", cfg.ReminderHour)
	}
	if cfg.ChartWeeks < 1 {
		return nil, fmt.Errorf("BJJ_CHART_WEEKS must be positive, got %d", cfg.ChartWeeks)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("BJJ_TICK_INTERVAL must be positive, got %v", cfg.TickInterval)
	}

	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "bjjdiary", ".env"),
			filepath.Join(home, ".bjjdiary", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "diary.db"
	}
	return filepath.Join(home, ".config", "bjjdiary", "diary.db")
}

// getDefaultLogPath returns the default path for the log file.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bjjdiary.log"
	}
	return filepath.Join(home, ".config", "bjjdiary", "bjjdiary.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts the forms strconv.ParseBool accepts ("1", "t", "true", ...).
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
