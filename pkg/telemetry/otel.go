package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/host"
)

// Default tracer name for Loom applications.
const defaultTracerName = "loom"

// TraceConfig configures the OpenTelemetry host wrapper.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "loom").
	TracerName string

	// Attributes are added to every pass span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry host wrapper.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithSpanAttributes sets constant attributes for every pass span.
func WithSpanAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = attrs
	}
}

// TracedHost is a host.Host that attributes mutation counts to the spans
// opened by Pass.
type TracedHost struct {
	inner host.Host
	cfg   TraceConfig

	// mutations counts forwarded mutations since the wrapper was created;
	// Pass records the delta across its closure. Single-goroutine, like
	// the runtime itself.
	mutations int64
}

// Trace wraps h with OpenTelemetry tracing.
func Trace(h host.Host, opts ...TraceOption) *TracedHost {
	cfg := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)
	return &TracedHost{inner: h, cfg: cfg}
}

// Pass runs f inside a span named name and records the number of platform
// mutations f issued as a span attribute. An error from f marks the span
// failed and is returned unchanged.
func (th *TracedHost) Pass(ctx context.Context, name string, f func(context.Context) error) error {
	ctx, span := th.cfg.tracer.Start(ctx, name, trace.WithAttributes(th.cfg.Attributes...))
	defer span.End()

	before := th.mutations
	err := f(ctx)
	span.SetAttributes(attribute.Int64("loom.mutations", th.mutations-before))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (th *TracedHost) CreateText(text string) host.Node {
	th.mutations++
	return th.inner.CreateText(text)
}

func (th *TracedHost) CreateElement(tag string) host.Node {
	th.mutations++
	return th.inner.CreateElement(tag)
}

func (th *TracedHost) SetText(n host.Node, text string) {
	th.mutations++
	th.inner.SetText(n, text)
}

func (th *TracedHost) SetAttribute(n host.Node, name, value string) {
	th.mutations++
	th.inner.SetAttribute(n, name, value)
}

func (th *TracedHost) AppendChild(parent, child host.Node) {
	th.mutations++
	th.inner.AppendChild(parent, child)
}

func (th *TracedHost) InsertBefore(before, n host.Node) {
	th.mutations++
	th.inner.InsertBefore(before, n)
}

func (th *TracedHost) Replace(old, new host.Node) {
	th.mutations++
	th.inner.Replace(old, new)
}

func (th *TracedHost) Remove(n host.Node) {
	th.mutations++
	th.inner.Remove(n)
}

func (th *TracedHost) AddEventListener(n host.Node, event string, cb host.Callback) host.Listener {
	return th.inner.AddEventListener(n, event, cb)
}
