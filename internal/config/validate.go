package config

import (
	"fmt"
	"regexp"
	"strings"
)

// hexColor accepts #RGB and #RRGGBB.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Presence.ClientID) == "" {
		return fmt.Errorf("config: presence.client_id must not be empty")
	}
	if c.Presence.IntervalSeconds <= 0 {
		return fmt.Errorf("config: presence.interval_seconds must be positive, got %d", c.Presence.IntervalSeconds)
	}
	for name, value := range map[string]string{
		"theme.title":  c.Theme.Title,
		"theme.text":   c.Theme.Text,
		"theme.result": c.Theme.Result,
		"theme.error":  c.Theme.Error,
	} {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("config: %s: %q is not a hex color", name, value)
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
