package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/loom-ui/loom/pkg/hosttest"
)

func TestTracePassForwardsAndCounts(t *testing.T) {
	fake := hosttest.New()
	th := Trace(fake, WithTracerName("loom-test"))

	err := th.Pass(context.Background(), "update", func(ctx context.Context) error {
		n := th.CreateText("a")
		th.SetText(n, "b")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.mutations != 2 {
		t.Errorf("expected 2 mutations counted, got %d", th.mutations)
	}
	if fake.Counts.CreateText != 1 || fake.Counts.SetText != 1 {
		t.Errorf("mutations not forwarded: %+v", fake.Counts)
	}
}

func TestTracePassPropagatesError(t *testing.T) {
	fake := hosttest.New()
	th := Trace(fake)

	sentinel := errors.New("callback failed")
	err := th.Pass(context.Background(), "update", func(ctx context.Context) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected the pass error back, got %v", err)
	}
}
