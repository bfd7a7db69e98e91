package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_ENV_INT"

	tests := []struct {
		name       string
		envVal     string
		defaultVal int
		want       int
	}{
		{"Valid", "42", 7, 42},
		{"Invalid", "not-a-number", 7, 7},
		{"Empty", "", 7, 7},
		{"Negative", "-3", 7, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvInt(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_ENV_BOOL"

	tests := []struct {
		name       string
		envVal     string
		defaultVal bool
		want       bool
	}{
		{"True", "true", false, true},
		{"One", "1", false, true},
		{"False", "false", true, false},
		{"Invalid", "maybe", true, true},
		{"Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvBool(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Directory was not created")
	}

	// Empty and current-dir paths are no-ops
	if err := ensureDir(""); err != nil {
		t.Errorf("ensureDir(\"\") failed: %v", err)
	}
	if err := ensureDir("."); err != nil {
		t.Errorf("ensureDir(\".\") failed: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("BJJ_DATABASE_PATH", filepath.Join(tmpDir, "diary.db"))
	defer os.Unsetenv("BJJ_DATABASE_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ReminderHour != defaultReminderHour {
		t.Errorf("ReminderHour = %d, want %d", cfg.ReminderHour, defaultReminderHour)
	}
	if cfg.ChartWeeks != defaultChartWeeks {
		t.Errorf("ChartWeeks = %d, want %d", cfg.ChartWeeks, defaultChartWeeks)
	}
	if cfg.TickInterval != defaultTickInterval {
		t.Errorf("TickInterval = %v, want %v", cfg.TickInterval, defaultTickInterval)
	}
	if !cfg.ReminderEnabled {
		t.Error("Expected reminder enabled by default")
	}
}

func TestLoad_InvalidReminderHour(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("BJJ_DATABASE_PATH", filepath.Join(tmpDir, "diary.db"))
	os.Setenv("BJJ_REMINDER_HOUR", "25")
	defer os.Unsetenv("BJJ_DATABASE_PATH")
	defer os.Unsetenv("BJJ_REMINDER_HOUR")

	if _, err := Load(); err == nil {
		t.Error("Expected error for out-of-range reminder hour")
	}
}

func TestLoad_InvalidTickInterval(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("BJJ_DATABASE_PATH", filepath.Join(tmpDir, "diary.db"))
	os.Setenv("BJJ_TICK_INTERVAL", "-2s")
	defer os.Unsetenv("BJJ_DATABASE_PATH")
	defer os.Unsetenv("BJJ_TICK_INTERVAL")

	if _, err := Load(); err == nil {
		t.Error("Expected error for negative tick interval")
	}
}
