package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mathhelper/client"
)

type recordingSetter struct {
	calls []any
	err   error
}

func (r *recordingSetter) SetActivity(activity any) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, activity)
	return nil
}

func TestPublisherPublishesEachInterval(t *testing.T) {
	setter := &recordingSetter{}
	pub := client.NewPublisher(setter, 10*time.Millisecond, func() client.Activity {
		return client.Activity{State: "working"}
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	if err := pub.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(setter.calls) < 2 {
		t.Fatalf("published %d times, want at least 2", len(setter.calls))
	}
	act, ok := setter.calls[0].(client.Activity)
	if !ok || act.State != "working" {
		t.Fatalf("published %v", setter.calls[0])
	}
}

func TestPublisherStopsOnCancel(t *testing.T) {
	setter := &recordingSetter{}
	pub := client.NewPublisher(setter, time.Hour, func() client.Activity {
		return client.Activity{State: "idle"}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- pub.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if len(setter.calls) != 0 {
		t.Fatalf("published %d times after immediate cancel", len(setter.calls))
	}
}

func TestPublisherFatalOnPublishError(t *testing.T) {
	wantErr := errors.New("pipe gone")
	setter := &recordingSetter{err: wantErr}
	pub := client.NewPublisher(setter, 5*time.Millisecond, func() client.Activity {
		return client.Activity{State: "working"}
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := pub.Run(ctx)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run = %v, want %v", err, wantErr)
	}
}

func TestPublisherSkipsEmptySnapshot(t *testing.T) {
	setter := &recordingSetter{}
	pub := client.NewPublisher(setter, 5*time.Millisecond, func() client.Activity {
		return client.Activity{}
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := pub.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(setter.calls) != 0 {
		t.Fatalf("published %d empty activities", len(setter.calls))
	}
}
