// Package config loads the user-editable YAML configuration. Environment
// variables act as read-only overrides at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Env var names used as overrides
const (
	EnvLogLevel  = "GOAREA_LOG_LEVEL"
	EnvLogFormat = "GOAREA_LOG_FORMAT"
	EnvLogFile   = "GOAREA_LOG_FILE"
)

// GestureConfig holds the click-classification thresholds
type GestureConfig struct {
	MaxClickDistancePx float64 `yaml:"max_click_distance_px"`
	MaxClickDurationMs int     `yaml:"max_click_duration_ms"`
	SuppressWindowMs   int     `yaml:"suppress_window_ms"`
}

// MaxClickDuration returns the duration threshold
func (g GestureConfig) MaxClickDuration() time.Duration {
	return time.Duration(g.MaxClickDurationMs) * time.Millisecond
}

// SuppressWindow returns the click-suppression window
func (g GestureConfig) SuppressWindow() time.Duration {
	return time.Duration(g.SuppressWindowMs) * time.Millisecond
}

// LoggingConfig mirrors the log package options
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the top-level configuration document
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Gesture       GestureConfig `yaml:"gesture"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Gesture: GestureConfig{
			MaxClickDistancePx: 6,
			MaxClickDurationMs: 300,
			SuppressWindowMs:   300,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the config file location in the user scope
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "goarea", "config.yaml"), nil
}

// Load reads the config at path, falling back to defaults when the file does
// not exist, then applies environment overrides. Invalid threshold values
// are replaced by their defaults rather than rejected.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// missing file is fine
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.sanitize()
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed
func Save(path string, cfg AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

func (c *AppConfig) sanitize() {
	defaults := Defaults()
	if c.Gesture.MaxClickDistancePx <= 0 {
		c.Gesture.MaxClickDistancePx = defaults.Gesture.MaxClickDistancePx
	}
	if c.Gesture.MaxClickDurationMs <= 0 {
		c.Gesture.MaxClickDurationMs = defaults.Gesture.MaxClickDurationMs
	}
	if c.Gesture.SuppressWindowMs <= 0 {
		c.Gesture.SuppressWindowMs = defaults.Gesture.SuppressWindowMs
	}
}
