package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing. Use when metrics are
// disabled to avoid the OTel meter overhead entirely.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

func (NoopMetrics) RecordInvoke(_ context.Context, _ string, _ time.Duration, _ int) {}
func (NoopMetrics) RecordEnqueue(_ context.Context, _ string)                        {}
func (NoopMetrics) RecordProcess(_ context.Context, _ int, _ time.Duration, _ error) {}

// NoopSpanManager is a SpanManager that does nothing. Use when tracing is
// disabled to avoid the OTel tracer overhead entirely.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

func (NoopSpanManager) StartInvokeSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

func (NoopSpanManager) StartProcessSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
