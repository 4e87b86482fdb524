package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"mathhelper/client"
	"mathhelper/transport/ipc"
)

func newPresenceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presence",
		Short: "Publish rich presence until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// The peer accepts one presence per application; a second
			// publisher on the same machine would fight over it.
			lock := flock.New(filepath.Join(os.TempDir(), "mathhelper-presence.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire presence lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another presence publisher is already running")
			}
			defer lock.Unlock()

			conn, err := ipc.Dial(cfg.Presence.ClientID, ctx.logger)
			if err != nil {
				return err
			}
			defer conn.Close()

			activity := client.Activity{
				Type:    client.Playing,
				State:   cfg.Presence.State,
				Details: cfg.Presence.Details,
				Assets: &client.Assets{
					LargeImage: cfg.Presence.LargeImage,
					LargeText:  cfg.Presence.LargeText,
				},
			}

			fmt.Println(ctx.styles.title.Render("MathHelper presence"))
			fmt.Println(ctx.styles.text.Render("Connected. Press Ctrl-C to stop."))

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pub := client.NewPublisher(conn, cfg.Presence.Interval(), func() client.Activity {
				return activity
			}, ctx.logger)
			return pub.Run(runCtx)
		},
	}
}
