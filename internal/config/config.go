// Package config loads and validates the application configuration from a
// TOML file, applying defaults for anything unset.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Presence configures the rich-presence connection and payload defaults.
type Presence struct {
	ClientID        string `toml:"client_id"`
	IntervalSeconds int    `toml:"interval_seconds"`
	State           string `toml:"state"`
	Details         string `toml:"details"`
	LargeImage      string `toml:"large_image"`
	LargeText       string `toml:"large_text"`
}

// Theme supplies the hex color strings used for terminal output.
type Theme struct {
	Title  string `toml:"title"`
	Text   string `toml:"text"`
	Result string `toml:"result"`
	Error  string `toml:"error"`
}

// Logging configures the slog logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	Presence Presence `toml:"presence"`
	Theme    Theme    `toml:"theme"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the built-in configuration, matching the sample file.
func Default() *Config {
	return &Config{
		Presence: Presence{
			ClientID:        "797139388513386546",
			IntervalSeconds: 5,
			State:           "Version v1.0",
			Details:         "In the main menu",
			LargeImage:      "icon",
			LargeText:       "MathHelper",
		},
		Theme: Theme{
			Title:  "#5865F2",
			Text:   "#FFFFFF",
			Result: "#57F287",
			Error:  "#ED4245",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned as-is. The result is always validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location:
// $XDG_CONFIG_HOME/mathhelper/config.toml, else ~/.config/mathhelper/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mathhelper", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.toml")
	}
	return filepath.Join(home, ".config", "mathhelper", "config.toml")
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file unless force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Interval returns the publish interval as a duration.
func (p Presence) Interval() time.Duration {
	return time.Duration(p.IntervalSeconds) * time.Second
}
