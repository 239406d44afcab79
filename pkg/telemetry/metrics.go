// Package telemetry provides observability wrappers around a host.Host.
//
// Instrument adds Prometheus counters for every platform mutation the
// runtime issues; Trace adds OpenTelemetry spans around update passes. Both
// wrappers are strictly pass-through: they never reorder, absorb, or alter a
// mutation.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/loom-ui/loom/pkg/host"
)

// MetricsConfig configures the Prometheus host wrapper.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "loom").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus host wrapper.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the pass-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "loom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	mutations    *prometheus.CounterVec
	liveNodes    prometheus.Gauge
	passDuration prometheus.Histogram
}

func newMetrics(c MetricsConfig) *metrics {
	factory := promauto.With(c.Registry)
	return &metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "platform_mutations_total",
			Help:        "Platform mutations issued by the runtime, by operation.",
			ConstLabels: c.ConstLabels,
		}, []string{"op"}),
		liveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "live_nodes",
			Help:        "Platform nodes created and not yet removed.",
			ConstLabels: c.ConstLabels,
		}),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Duration of update passes timed via TimePass.",
			ConstLabels: c.ConstLabels,
			Buckets:     c.Buckets,
		}),
	}
}

// InstrumentedHost is a host.Host that counts every mutation it forwards.
type InstrumentedHost struct {
	inner host.Host
	m     *metrics
}

// Instrument wraps h with Prometheus instrumentation.
func Instrument(h host.Host, opts ...MetricsOption) *InstrumentedHost {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &InstrumentedHost{inner: h, m: newMetrics(cfg)}
}

// TimePass times f and records its duration on the pass histogram.
func (ih *InstrumentedHost) TimePass(f func()) {
	start := time.Now()
	f()
	ih.m.passDuration.Observe(time.Since(start).Seconds())
}

func (ih *InstrumentedHost) CreateText(text string) host.Node {
	ih.m.mutations.WithLabelValues("create_text").Inc()
	ih.m.liveNodes.Inc()
	return ih.inner.CreateText(text)
}

func (ih *InstrumentedHost) CreateElement(tag string) host.Node {
	ih.m.mutations.WithLabelValues("create_element").Inc()
	ih.m.liveNodes.Inc()
	return ih.inner.CreateElement(tag)
}

func (ih *InstrumentedHost) SetText(n host.Node, text string) {
	ih.m.mutations.WithLabelValues("set_text").Inc()
	ih.inner.SetText(n, text)
}

func (ih *InstrumentedHost) SetAttribute(n host.Node, name, value string) {
	ih.m.mutations.WithLabelValues("set_attribute").Inc()
	ih.inner.SetAttribute(n, name, value)
}

func (ih *InstrumentedHost) AppendChild(parent, child host.Node) {
	ih.m.mutations.WithLabelValues("append_child").Inc()
	ih.inner.AppendChild(parent, child)
}

func (ih *InstrumentedHost) InsertBefore(before, n host.Node) {
	ih.m.mutations.WithLabelValues("insert_before").Inc()
	ih.inner.InsertBefore(before, n)
}

func (ih *InstrumentedHost) Replace(old, new host.Node) {
	ih.m.mutations.WithLabelValues("replace").Inc()
	ih.inner.Replace(old, new)
}

func (ih *InstrumentedHost) Remove(n host.Node) {
	ih.m.mutations.WithLabelValues("remove").Inc()
	ih.m.liveNodes.Dec()
	ih.inner.Remove(n)
}

func (ih *InstrumentedHost) AddEventListener(n host.Node, event string, cb host.Callback) host.Listener {
	ih.m.mutations.WithLabelValues("add_event_listener").Inc()
	return ih.inner.AddEventListener(n, event, cb)
}
