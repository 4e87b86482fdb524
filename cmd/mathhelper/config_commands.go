package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mathhelper/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	return cmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *ctx.configFlag
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteSample(path, force); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rows := [][]string{
				{"presence.client_id", cfg.Presence.ClientID},
				{"presence.interval_seconds", strconv.Itoa(cfg.Presence.IntervalSeconds)},
				{"presence.state", cfg.Presence.State},
				{"presence.details", cfg.Presence.Details},
				{"presence.large_image", cfg.Presence.LargeImage},
				{"presence.large_text", cfg.Presence.LargeText},
				{"theme.title", cfg.Theme.Title},
				{"theme.text", cfg.Theme.Text},
				{"theme.result", cfg.Theme.Result},
				{"theme.error", cfg.Theme.Error},
				{"logging.level", cfg.Logging.Level},
				{"logging.format", cfg.Logging.Format},
			}
			fmt.Println(renderTable([]string{"Key", "Value"}, rows))
			return nil
		},
	}
}
