package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	return reader, func() {
		otel.SetMeterProvider(original)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("error shutting down meter provider: %v", err)
		}
	}
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetricsRecorderIsNotNoopWithRealProvider(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	defaultMetrics = nil
	defaultMetricsOnce = sync.Once{}

	recorder := NewMetricsRecorder()
	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "expected a real metrics recorder, got noop")
}

func TestOtelMetricsRecordInvoke(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordInvoke(ctx, "orders", 50*time.Millisecond, 3)

	rm := collectMetrics(t, reader)

	invokes := findMetric(rm, "eventpp.callbacklist.invokes")
	require.NotNil(t, invokes)
	sum, ok := invokes.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.NotEmpty(t, sum.DataPoints)

	latency := findMetric(rm, "eventpp.callbacklist.invoke_latency_ms")
	require.NotNil(t, latency)
	hist, ok := latency.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.NotEmpty(t, hist.DataPoints)

	callbacksRun := findMetric(rm, "eventpp.callbacklist.callbacks_run")
	require.NotNil(t, callbacksRun)
}

func TestOtelMetricsRecordEnqueue(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordEnqueue(context.Background(), "order.created")

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "eventpp.eventqueue.enqueues")
	require.NotNil(t, metric)

	sum, ok := metric.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	found := false
	for _, dp := range sum.DataPoints {
		for _, attr := range dp.Attributes.ToSlice() {
			if attr.Key == "key" && attr.Value.AsString() == "order.created" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a datapoint tagged key=order.created")
}

func TestOtelMetricsRecordProcess(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordProcess(ctx, 5, 10*time.Millisecond, nil)
	m.RecordProcess(ctx, 0, 2*time.Millisecond, errors.New("dispatch failed"))

	rm := collectMetrics(t, reader)

	processes := findMetric(rm, "eventpp.eventqueue.processes")
	require.NotNil(t, processes)

	dispatchErrors := findMetric(rm, "eventpp.eventqueue.dispatch_errors")
	require.NotNil(t, dispatchErrors)
	sum, ok := dispatchErrors.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.NotEmpty(t, sum.DataPoints)
	assert.GreaterOrEqual(t, sum.DataPoints[0].Value, int64(1))

	latency := findMetric(rm, "eventpp.eventqueue.process_latency_ms")
	require.NotNil(t, latency)
}

func TestNewOtelMetricsCreatesAllInstruments(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NotNil(t, m.invokes)
	assert.NotNil(t, m.invokeLatency)
	assert.NotNil(t, m.callbacksRun)
	assert.NotNil(t, m.enqueues)
	assert.NotNil(t, m.processes)
	assert.NotNil(t, m.processLatency)
	assert.NotNil(t, m.dispatchErrors)
}
