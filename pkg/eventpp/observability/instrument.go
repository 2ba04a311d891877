package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventqueue"
)

// InstrumentedQueue decorates an *eventqueue.EventQueue with logging,
// metrics, and tracing rather than building observability into EventQueue
// itself. The core stays free of any dependency on slog or OTel, and
// callers who don't want the overhead simply use the plain queue.
type InstrumentedQueue[Key comparable] struct {
	queue     *eventqueue.EventQueue[Key]
	logger    *slog.Logger
	metrics   MetricsRecorder
	spans     SpanManager
	keyString func(Key) string
}

// NewInstrumentedQueue wraps queue. Pass NoopMetrics{} and
// NoopSpanManager{} to disable metrics or tracing while keeping logging.
func NewInstrumentedQueue[Key comparable](
	queue *eventqueue.EventQueue[Key],
	logger *slog.Logger,
	metrics MetricsRecorder,
	spans SpanManager,
	keyString func(Key) string,
) *InstrumentedQueue[Key] {
	return &InstrumentedQueue[Key]{
		queue:     queue,
		logger:    logger,
		metrics:   metrics,
		spans:     spans,
		keyString: keyString,
	}
}

// Enqueue stamps a fresh correlation ID (via google/uuid) for observability
// purposes only, never stored on the QueuedEvent itself, then delegates to
// the wrapped queue's Enqueue.
func (iq *InstrumentedQueue[Key]) Enqueue(ctx context.Context, key Key, args ...any) error {
	correlationID := uuid.NewString()
	keyStr := iq.keyString(key)

	err := iq.queue.Enqueue(ctx, key, args...)
	if err != nil {
		return err
	}

	iq.metrics.RecordEnqueue(ctx, keyStr)
	LogEventEnqueued(EnrichLogger(iq.logger, correlationID, keyStr), keyStr)
	return nil
}

// Process starts a span and records metrics/logs around the wrapped
// queue's Process call.
func (iq *InstrumentedQueue[Key]) Process(ctx context.Context) (int, error) {
	correlationID := uuid.NewString()
	ctx, span := iq.spans.StartProcessSpan(ctx, correlationID)

	elapsed := TimedOperation()
	dispatched, err := iq.queue.Process(ctx)
	durationMs := elapsed()

	iq.spans.EndSpanWithError(span, err)
	iq.metrics.RecordProcess(ctx, dispatched, time.Duration(durationMs*float64(time.Millisecond)), err)
	LogEventProcessed(EnrichLogger(iq.logger, correlationID, ""), dispatched, durationMs, err)

	return dispatched, err
}

// Take moves the head event into out, logging an eventerrors.EmptyQueue
// condition when the queue has nothing to take.
func (iq *InstrumentedQueue[Key]) Take(out *eventqueue.QueuedEvent[Key]) bool {
	ok := iq.queue.Take(out)
	if !ok {
		LogEventTakeMiss(iq.logger, "take")
	}
	return ok
}

// Peek copies the head event into out without removing it, logging an
// eventerrors.EmptyQueue condition when the queue has nothing to peek.
func (iq *InstrumentedQueue[Key]) Peek(out *eventqueue.QueuedEvent[Key]) bool {
	ok := iq.queue.Peek(out)
	if !ok {
		LogEventTakeMiss(iq.logger, "peek")
	}
	return ok
}

// WaitFor blocks like the wrapped queue's WaitFor, logging an
// eventerrors.Timeout condition when d elapses without an event.
func (iq *InstrumentedQueue[Key]) WaitFor(ctx context.Context, d time.Duration) (bool, error) {
	nonEmpty, err := iq.queue.WaitFor(ctx, d)
	if err == nil && !nonEmpty {
		LogWaitTimeout(iq.logger, "wait_for")
	}
	return nonEmpty, err
}

// Queue returns the wrapped EventQueue for operations InstrumentedQueue
// doesn't decorate (Empty, Dispatch, Wait, DisableNotify).
func (iq *InstrumentedQueue[Key]) Queue() *eventqueue.EventQueue[Key] {
	return iq.queue
}
