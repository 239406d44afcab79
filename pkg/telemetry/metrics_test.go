package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/hosttest"
)

func TestInstrumentCountsMutations(t *testing.T) {
	fake := hosttest.New()
	ih := Instrument(fake, WithRegistry(prometheus.NewRegistry()))

	n := ih.CreateText("hello")
	ih.SetText(n, "world")
	ih.SetText(n, "again")
	el := ih.CreateElement("div")
	ih.AppendChild(el, n)
	ih.Remove(n)

	if got := testutil.ToFloat64(ih.m.mutations.WithLabelValues("set_text")); got != 2 {
		t.Errorf("expected 2 set_text, got %v", got)
	}
	if got := testutil.ToFloat64(ih.m.mutations.WithLabelValues("create_text")); got != 1 {
		t.Errorf("expected 1 create_text, got %v", got)
	}
	if got := testutil.ToFloat64(ih.m.liveNodes); got != 1 {
		t.Errorf("expected 1 live node, got %v", got)
	}

	// The wrapper is pass-through: the fake saw everything.
	if fake.Counts.SetText != 2 || fake.Counts.CreateText != 1 {
		t.Errorf("mutations not forwarded: %+v", fake.Counts)
	}
}

func TestInstrumentTimePass(t *testing.T) {
	fake := hosttest.New()
	ih := Instrument(fake, WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	ran := false
	ih.TimePass(func() { ran = true })
	if !ran {
		t.Fatal("TimePass must run the pass")
	}
	if got := testutil.CollectAndCount(ih.m.passDuration); got != 1 {
		t.Errorf("expected the histogram to be collectable, got %d series", got)
	}
}

func TestInstrumentListenersForwarded(t *testing.T) {
	fake := hosttest.New()
	ih := Instrument(fake, WithRegistry(prometheus.NewRegistry()))

	n := ih.CreateElement("button")
	fired := 0
	ih.AddEventListener(n, "click", func(host.Event) { fired++ })

	fake.Fire(n, "click", nil)
	if fired != 1 {
		t.Errorf("expected forwarded listener to fire once, got %d", fired)
	}
}
