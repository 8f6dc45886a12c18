package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client settings. All fields have working defaults so a
// missing config file is not an error.
type Config struct {
	// BaseURL is the root of the MRS backend, without a trailing slash.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds every request to the backend.
	Timeout time.Duration `yaml:"timeout"`
	// StatsInterval is the stats poll period.
	StatsInterval time.Duration `yaml:"stats_interval"`
	// ItemsInterval is the recent-items poll period.
	ItemsInterval time.Duration `yaml:"items_interval"`
	// Currency is the suffix for formatted prices.
	Currency string `yaml:"currency"`
	// LogFile receives JSON log lines. Empty disables logging so nothing
	// writes over the TUI.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:       "http://127.0.0.1:5000",
		Timeout:       30 * time.Second,
		StatsInterval: 10 * time.Second,
		ItemsInterval: 30 * time.Second,
		Currency:      "JPY",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mrs", "config.yaml")
}

// Load reads settings from path, falling back to defaults when the file is
// absent. An empty path uses DefaultPath. The MRS_BASE_URL environment
// variable overrides the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if url := os.Getenv("MRS_BASE_URL"); url != "" {
		cfg.BaseURL = url
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = Default().Timeout
	}
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = Default().StatsInterval
	}
	if cfg.ItemsInterval <= 0 {
		cfg.ItemsInterval = Default().ItemsInterval
	}
	if cfg.Currency == "" {
		cfg.Currency = Default().Currency
	}
	return cfg, nil
}
