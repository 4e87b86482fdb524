package main

import (
	"log/slog"
	"os"

	"mathhelper/internal/config"
	"mathhelper/internal/logging"
)

// commandContext carries lazily-loaded configuration and the derived
// logger and styles shared by every subcommand.
type commandContext struct {
	configFlag *string

	cfg    *config.Config
	logger *slog.Logger
	styles *styles
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := *c.configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.logger = logger
	c.styles = newStyles(cfg.Theme)
	return cfg, nil
}
