package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the eventpp tracer instance, resolved against the global OTel
// tracer provider.
var tracer = otel.Tracer("eventpp")

// SpanManager handles trace span lifecycle around Invoke and Process. Use
// NewSpanManager for OTel-backed tracing, or NoopSpanManager{} to disable
// tracing without changing call sites.
type SpanManager interface {
	// StartInvokeSpan starts a span covering one CallbackList.Invoke pass.
	StartInvokeSpan(ctx context.Context, listName string) (context.Context, trace.Span)

	// StartProcessSpan starts a span covering one EventQueue.Process call.
	StartProcessSpan(ctx context.Context, correlationID string) (context.Context, trace.Span)

	// EndSpanWithError completes span, recording err if non-nil.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds a named event to the span active in ctx.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global OTel tracer
// provider. Configure the provider before calling this, e.g. with
// otel.SetTracerProvider.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

func (m *otelSpanManager) StartInvokeSpan(ctx context.Context, listName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventpp.callbacklist.invoke",
		trace.WithAttributes(attribute.String("list", listName)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) StartProcessSpan(ctx context.Context, correlationID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventpp.eventqueue.process",
		trace.WithAttributes(attribute.String("correlation.id", correlationID)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
