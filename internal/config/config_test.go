package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestSampleMatchesDefaults(t *testing.T) {
	cfg := &Config{}
	if err := toml.Unmarshal([]byte(sampleConfig), cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Fatalf("sample config = %+v, want %+v", cfg, want)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[presence]
client_id = "42"
interval_seconds = 15

[theme]
result = "#0f0"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Presence.ClientID != "42" || cfg.Presence.IntervalSeconds != 15 {
		t.Fatalf("presence = %+v", cfg.Presence)
	}
	if cfg.Theme.Result != "#0f0" {
		t.Fatalf("theme.result = %q", cfg.Theme.Result)
	}
	// Untouched sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging.level = %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty client id":  func(c *Config) { c.Presence.ClientID = " " },
		"zero interval":    func(c *Config) { c.Presence.IntervalSeconds = 0 },
		"bad hex color":    func(c *Config) { c.Theme.Title = "blue" },
		"short hex color":  func(c *Config) { c.Theme.Error = "#ff" },
		"bad log format":   func(c *Config) { c.Logging.Format = "xml" },
		"hex without hash": func(c *Config) { c.Theme.Text = "FFFFFF" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate succeeded", name)
		}
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[presence]") {
		t.Fatalf("sample missing presence section: %s", data)
	}

	if err := WriteSample(path, false); err == nil {
		t.Fatal("WriteSample overwrote without force")
	}
	if err := WriteSample(path, true); err != nil {
		t.Fatalf("WriteSample --force: %v", err)
	}
}
