package observability_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventqueue"
	"github.com/mediabuff/eventpp/pkg/eventpp/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNilLoggerIsSafe(t *testing.T) {
	observability.LogCallbackRegistered(nil, "list", "append")
	observability.LogCallbackRemoved(nil, "list", true)
	observability.LogEventEnqueued(nil, "key")
	observability.LogEventProcessed(nil, 1, 1.5, nil)
	observability.LogEventDispatchError(nil, "key", nil)

	if got := observability.EnrichLogger(nil, "id", "key"); got != nil {
		t.Fatalf("EnrichLogger(nil, ...) = %v, want nil", got)
	}
}

func TestEnrichLoggerAttachesFields(t *testing.T) {
	enriched := observability.EnrichLogger(discardLogger(), "corr-1", "key-1")
	if enriched == nil {
		t.Fatal("EnrichLogger should not return nil for a non-nil logger")
	}
}

func TestTimedOperationReportsElapsed(t *testing.T) {
	done := observability.TimedOperation()
	time.Sleep(5 * time.Millisecond)
	ms := done()
	if ms <= 0 {
		t.Fatalf("elapsed = %v, want > 0", ms)
	}
}

func TestNoopMetricsAndSpansSatisfyInterfaces(t *testing.T) {
	var metrics observability.MetricsRecorder = observability.NoopMetrics{}
	metrics.RecordInvoke(context.Background(), "list", time.Millisecond, 3)
	metrics.RecordEnqueue(context.Background(), "key")
	metrics.RecordProcess(context.Background(), 1, time.Millisecond, nil)

	var spans observability.SpanManager = observability.NoopSpanManager{}
	ctx, span := spans.StartInvokeSpan(context.Background(), "list")
	spans.AddSpanEvent(ctx, "event")
	spans.EndSpanWithError(span, nil)
}

func TestInstrumentedQueueDelegatesToWrappedQueue(t *testing.T) {
	var dispatched []int
	lookup := eventqueue.LookupFunc[string](func(key string) (eventqueue.Dispatcher, bool) {
		return dispatcherFunc(func(_ context.Context, args []any) error {
			dispatched = append(dispatched, args[0].(int))
			return nil
		}), true
	})
	q := eventqueue.NewEventQueue(eventqueue.QueuePolicy[string]{Lookup: lookup})

	iq := observability.NewInstrumentedQueue(q, discardLogger(), observability.NoopMetrics{}, observability.NoopSpanManager{}, func(k string) string { return k })

	ctx := context.Background()
	if err := iq.Enqueue(ctx, "k", 7); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	n, err := iq.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n != 1 || len(dispatched) != 1 || dispatched[0] != 7 {
		t.Fatalf("n=%d dispatched=%v", n, dispatched)
	}
	if iq.Queue() != q {
		t.Fatal("Queue() should return the wrapped EventQueue")
	}
}

func TestInstrumentedQueueTakePeekLogEmptyQueue(t *testing.T) {
	q := eventqueue.NewEventQueue(eventqueue.QueuePolicy[string]{
		Lookup: func(string) (eventqueue.Dispatcher, bool) { return nil, false },
	})
	iq := observability.NewInstrumentedQueue(q, discardLogger(), observability.NoopMetrics{}, observability.NoopSpanManager{}, func(k string) string { return k })

	var out eventqueue.QueuedEvent[string]
	if iq.Take(&out) {
		t.Fatal("Take on an empty queue should return false")
	}
	if iq.Peek(&out) {
		t.Fatal("Peek on an empty queue should return false")
	}
}

func TestInstrumentedQueueWaitForLogsTimeout(t *testing.T) {
	q := eventqueue.NewEventQueue(eventqueue.QueuePolicy[string]{
		Lookup: func(string) (eventqueue.Dispatcher, bool) { return nil, false },
	})
	iq := observability.NewInstrumentedQueue(q, discardLogger(), observability.NoopMetrics{}, observability.NoopSpanManager{}, func(k string) string { return k })

	nonEmpty, err := iq.WaitFor(context.Background(), 5*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitFor: %v", err)
	}
	if nonEmpty {
		t.Fatal("WaitFor on an empty queue should time out (false, nil)")
	}
}

type dispatcherFunc func(ctx context.Context, args []any) error

func (f dispatcherFunc) Invoke(ctx context.Context, args []any) error { return f(ctx, args) }
