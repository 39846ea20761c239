// Package proptrace emits OpenTelemetry spans for a propcell graph:
// cache recomputations, alert dispatches, and rejected bindings.
//
// The tracer comes from the global OpenTelemetry tracer provider;
// configure it in main() before installing:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//	proptrace.Install()
package proptrace

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/propcell-dev/propcell/pkg/propcell"
)

// Default tracer name for propcell graphs.
const defaultTracerName = "propcell"

// Config configures the OpenTelemetry instrumentation.
type Config struct {
	// TracerName is the name of the tracer (default: "propcell").
	TracerName string

	// BaseContext parents every emitted span. Defaults to
	// context.Background(); the graph itself carries no context.
	BaseContext context.Context

	// TraceAlerts emits a span per alert dispatch. Alert volume can be
	// high, so this is disabled by default; recomputations and rejected
	// bindings are always traced.
	TraceAlerts bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures the OpenTelemetry instrumentation.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) { c.TracerName = name }
}

// WithBaseContext sets the parent context for emitted spans.
func WithBaseContext(ctx context.Context) Option {
	return func(c *Config) { c.BaseContext = ctx }
}

// WithTraceAlerts enables a span per alert dispatch.
func WithTraceAlerts(enable bool) Option {
	return func(c *Config) { c.TraceAlerts = enable }
}

func defaultTraceConfig() Config {
	return Config{
		TracerName:  defaultTracerName,
		BaseContext: context.Background(),
	}
}

var (
	installMu sync.Mutex
	uninstall func()
)

// Install resolves a tracer from the global provider and hooks span
// emission into the propcell graph.
func Install(opts ...Option) {
	config := defaultTraceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	installMu.Lock()
	defer installMu.Unlock()
	if uninstall != nil {
		return
	}

	instr := &propcell.Instrumentation{
		CacheRecomputed: func(name string, seconds float64) {
			start := time.Now().Add(-time.Duration(seconds * float64(time.Second)))
			_, span := config.tracer.Start(
				config.BaseContext,
				"propcell.recompute",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithTimestamp(start),
				trace.WithAttributes(
					attribute.String("propcell.property", name),
					attribute.Float64("propcell.duration_seconds", seconds),
				),
			)
			span.End()
		},
		BindingRejected: func(from, to propcell.Node) {
			_, span := config.tracer.Start(
				config.BaseContext,
				"propcell.bind",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String("propcell.from", from.Name()),
					attribute.String("propcell.to", to.Name()),
				),
			)
			span.SetStatus(codes.Error, "circular binding rejected")
			span.End()
		},
	}
	if config.TraceAlerts {
		instr.AlertDispatched = func(origin propcell.Node, subscribers int) {
			_, span := config.tracer.Start(
				config.BaseContext,
				"propcell.alert",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String("propcell.property", origin.Name()),
					attribute.Int("propcell.fanout", subscribers),
				),
			)
			span.End()
		}
	}
	uninstall = propcell.Instrument(instr)
}

// Uninstall detaches span emission from the graph.
func Uninstall() {
	installMu.Lock()
	defer installMu.Unlock()
	if uninstall != nil {
		uninstall()
		uninstall = nil
	}
}
