// Package telemetry integrates query-pipeline events with Clue tracing and metrics.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Logger captures structured logging used throughout the engine. The interface
// is intentionally small so tests can provide lightweight stubs.
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals ...any)
	Info(ctx context.Context, msg string, keyvals ...any)
	Warn(ctx context.Context, msg string, keyvals ...any)
	Error(ctx context.Context, msg string, keyvals ...any)
}

// Metrics exposes counter and histogram helpers for engine instrumentation.
type Metrics interface {
	IncCounter(name string, value float64, tags ...string)
	RecordTimer(name string, duration time.Duration, tags ...string)
	RecordGauge(name string, value float64, tags ...string)
}

// Tracer abstracts span creation so engine code can remain agnostic of the
// underlying OpenTelemetry provider.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	Span(ctx context.Context) Span
}

// Span represents an in-flight tracing span.
type Span interface {
	End(opts ...trace.SpanEndOption)
	AddEvent(name string, attrs ...any)
	SetStatus(code codes.Code, description string)
	RecordError(err error, opts ...trace.EventOption)
}

// FetchTelemetry captures observability metadata collected during an upstream
// provider fetch. Common fields provide type safety for standard metrics; Extra
// holds adapter-specific metadata (cache key, HTTP status, retry count, ...).
type FetchTelemetry struct {
	// DurationMs is the wall-clock fetch time in milliseconds.
	DurationMs int64
	// Provider identifies which upstream adapter performed the fetch.
	Provider string
	// CacheTier records which tier served the request: "memory", "disk", "upstream", "miss".
	CacheTier string
	// Extra holds adapter-specific metadata not captured by common fields.
	Extra map[string]any
}
