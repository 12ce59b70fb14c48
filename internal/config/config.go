// Package config resolves all runtime settings once, before any component
// runs. Components receive explicit values and never consult the
// environment or home directory themselves.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Directories
	BundleDir       string
	ApplicationsDir string
	IconThemeDir    string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// External commands
	ExtractTimeout time.Duration
	RefreshTimeout time.Duration
}

// fileConfig is the YAML shape of the optional config file. Zero values
// mean "keep the default".
type fileConfig struct {
	BundleDir       string `yaml:"bundle_dir"`
	ApplicationsDir string `yaml:"applications_dir"`
	IconThemeDir    string `yaml:"icon_theme_dir"`
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	ExtractTimeout  string `yaml:"extract_timeout"`
	RefreshTimeout  string `yaml:"refresh_timeout"`
}

// DefaultPath returns the default config file location, or "" when the
// home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "appdesk", "config.yaml")
}

// Load resolves configuration in three layers: built-in defaults, the YAML
// file at path (a missing file is fine), then APPDESK_* environment
// variables.
func Load(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home dir: %w", err)
	}

	cfg := Config{
		BundleDir:       filepath.Join(home, "AppImages"),
		ApplicationsDir: filepath.Join(home, ".local", "share", "applications"),
		IconThemeDir:    filepath.Join(home, ".local", "share", "icons", "hicolor"),
		LogFile:         "/tmp/appdesk.log",
		LogLevel:        slog.LevelInfo,
		ExtractTimeout:  60 * time.Second,
		RefreshTimeout:  30 * time.Second,
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&c.BundleDir, fc.BundleDir)
	setString(&c.ApplicationsDir, fc.ApplicationsDir)
	setString(&c.IconThemeDir, fc.IconThemeDir)
	setString(&c.LogFile, fc.LogFile)
	if fc.LogLevel != "" {
		c.LogLevel = ParseLogLevel(fc.LogLevel)
	}
	if err := setDuration(&c.ExtractTimeout, fc.ExtractTimeout); err != nil {
		return fmt.Errorf("config file %s: extract_timeout: %w", path, err)
	}
	if err := setDuration(&c.RefreshTimeout, fc.RefreshTimeout); err != nil {
		return fmt.Errorf("config file %s: refresh_timeout: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.BundleDir, os.Getenv("APPDESK_BUNDLE_DIR"))
	setString(&c.ApplicationsDir, os.Getenv("APPDESK_APPLICATIONS_DIR"))
	setString(&c.IconThemeDir, os.Getenv("APPDESK_ICON_THEME_DIR"))
	setString(&c.LogFile, os.Getenv("APPDESK_LOG_FILE"))
	if v := os.Getenv("APPDESK_LOG_LEVEL"); v != "" {
		c.LogLevel = ParseLogLevel(v)
	}
	// Malformed env durations keep the prior value.
	_ = setDuration(&c.ExtractTimeout, os.Getenv("APPDESK_EXTRACT_TIMEOUT"))
	_ = setDuration(&c.RefreshTimeout, os.Getenv("APPDESK_REFRESH_TIMEOUT"))
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func setDuration(dst *time.Duration, val string) error {
	if val == "" {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// ParseLogLevel maps a level name to a slog level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
