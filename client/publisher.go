package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultInterval is how often the publisher refreshes the presence.
const DefaultInterval = 5 * time.Second

// ActivitySetter is the slice of the IPC connection the publisher needs.
type ActivitySetter interface {
	SetActivity(activity any) error
}

// Snapshot returns the activity to publish for the current iteration. It
// is called once per tick, so the owning application can swap the
// presence between iterations without any shared mutable state.
type Snapshot func() Activity

// Publisher periodically pushes the current activity snapshot over an
// established connection. It performs no reconnection: the first failed
// publish is fatal and ends Run, and the owner decides what happens next.
type Publisher struct {
	conn     ActivitySetter
	interval time.Duration
	snapshot Snapshot
	log      *slog.Logger
}

func NewPublisher(conn ActivitySetter, interval time.Duration, snapshot Snapshot, logger *slog.Logger) *Publisher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{conn: conn, interval: interval, snapshot: snapshot, log: logger}
}

// Run publishes until ctx is cancelled (returning nil) or a publish fails
// (returning the error). The first publish happens after one full
// interval; the inter-iteration wait is interruptible.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("presence publisher started", "interval", p.interval)
	for {
		select {
		case <-ctx.Done():
			p.log.Info("presence publisher stopped")
			return nil
		case <-ticker.C:
		}
		act := p.snapshot()
		if act.IsEmpty() {
			p.log.Debug("empty activity snapshot, skipping")
			continue
		}
		if err := p.conn.SetActivity(act); err != nil {
			p.log.Error("publish failed", "error", err)
			return fmt.Errorf("publish activity: %w", err)
		}
		p.log.Debug("activity published", "details", act.Details)
	}
}
