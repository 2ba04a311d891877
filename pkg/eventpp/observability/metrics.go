package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records callbacklist and eventqueue metrics. Use
// NewMetricsRecorder for OpenTelemetry-backed metrics, or NoopMetrics{}
// when metrics are disabled.
type MetricsRecorder interface {
	// RecordInvoke records one CallbackList.Invoke pass over listName.
	RecordInvoke(ctx context.Context, listName string, duration time.Duration, callbacksRun int)

	// RecordEnqueue records one EventQueue.Enqueue call for key.
	RecordEnqueue(ctx context.Context, key string)

	// RecordProcess records one EventQueue.Process call.
	RecordProcess(ctx context.Context, dispatched int, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	invokes        metric.Int64Counter
	invokeLatency  metric.Float64Histogram
	callbacksRun   metric.Int64Counter
	enqueues       metric.Int64Counter
	processes      metric.Int64Counter
	processLatency metric.Float64Histogram
	dispatchErrors metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventpp")

	invokes, err := meter.Int64Counter("eventpp.callbacklist.invokes",
		metric.WithDescription("Number of CallbackList.Invoke calls"),
	)
	if err != nil {
		return nil, err
	}

	invokeLatency, err := meter.Float64Histogram("eventpp.callbacklist.invoke_latency_ms",
		metric.WithDescription("CallbackList.Invoke latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	callbacksRun, err := meter.Int64Counter("eventpp.callbacklist.callbacks_run",
		metric.WithDescription("Number of individual callbacks run across all Invoke calls"),
	)
	if err != nil {
		return nil, err
	}

	enqueues, err := meter.Int64Counter("eventpp.eventqueue.enqueues",
		metric.WithDescription("Number of EventQueue.Enqueue calls"),
	)
	if err != nil {
		return nil, err
	}

	processes, err := meter.Int64Counter("eventpp.eventqueue.processes",
		metric.WithDescription("Number of events dispatched by EventQueue.Process calls"),
	)
	if err != nil {
		return nil, err
	}

	processLatency, err := meter.Float64Histogram("eventpp.eventqueue.process_latency_ms",
		metric.WithDescription("EventQueue.Process latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("eventpp.eventqueue.dispatch_errors",
		metric.WithDescription("Number of EventQueue.Process calls that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		invokes:        invokes,
		invokeLatency:  invokeLatency,
		callbacksRun:   callbacksRun,
		enqueues:       enqueues,
		processes:      processes,
		processLatency: processLatency,
		dispatchErrors: dispatchErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider. Configure the provider before calling this, e.g. with
// otel.SetMeterProvider. If metrics initialization fails, returns a no-op
// recorder rather than an error, so instrumentation never blocks startup.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("eventpp: metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordInvoke(ctx context.Context, listName string, duration time.Duration, callbacksRun int) {
	attrs := metric.WithAttributes(attribute.String("list", listName))
	m.invokes.Add(ctx, 1, attrs)
	m.invokeLatency.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
	m.callbacksRun.Add(ctx, int64(callbacksRun), attrs)
}

func (m *otelMetrics) RecordEnqueue(ctx context.Context, key string) {
	m.enqueues.Add(ctx, 1, metric.WithAttributes(attribute.String("key", key)))
}

func (m *otelMetrics) RecordProcess(ctx context.Context, dispatched int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))
	m.processes.Add(ctx, int64(dispatched), attrs)
	m.processLatency.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
	if err != nil {
		m.dispatchErrors.Add(ctx, 1)
	}
}
