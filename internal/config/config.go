// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/larenas/oxicosto/internal/entry"
	"github.com/larenas/oxicosto/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Billing BillingConfig `toml:"billing"`
	UI      UIConfig      `toml:"ui"`
}

// BillingConfig holds insurance billing settings.
type BillingConfig struct {
	DefaultCategory string `toml:"default_category"` // "contributivo" or "subsidiado"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha" or "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Billing: BillingConfig{
			DefaultCategory: string(entry.CategoryContributivo),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "oxicosto", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OXICOSTO_CATEGORY"); v != "" {
		cfg.Billing.DefaultCategory = v
	}
	if v := os.Getenv("OXICOSTO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := entry.ParseCategory(c.Billing.DefaultCategory); err != nil {
		return fmt.Errorf("default_category %q: %w", c.Billing.DefaultCategory, err)
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("theme %q not available (options: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Category returns the configured default insurance category.
func (c *Config) Category() entry.Category {
	cat, err := entry.ParseCategory(c.Billing.DefaultCategory)
	if err != nil {
		return entry.CategoryContributivo
	}
	return cat
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
