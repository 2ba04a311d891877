// Package observability provides opt-in structured logging, metrics, and
// tracing for callbacklist and eventqueue: structured logging via slog,
// metrics and tracing via OpenTelemetry. Every feature has a nil-safe or
// no-op fallback, so instrumenting a hot path never requires a nil check
// at the call site.
package observability

import (
	"log/slog"
	"time"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventerrors"
)

// EnrichLogger returns a logger with correlationID and queueKey attached to
// every subsequent record. Returns nil if logger is nil, so callers can
// chain EnrichLogger without a preceding nil check.
func EnrichLogger(logger *slog.Logger, correlationID, queueKey string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("correlation_id", correlationID),
		slog.String("queue_key", queueKey),
	)
}

// LogCallbackRegistered logs a callback being appended, prepended, or
// inserted into a CallbackList.
func LogCallbackRegistered(logger *slog.Logger, listName string, op string) {
	if logger == nil {
		return
	}
	logger.Debug("callback registered",
		slog.String("list", listName),
		slog.String("op", op),
	)
}

// LogCallbackRemoved logs the outcome of removing a callback by Handle. A
// miss (the handle no longer refers to a live Node) is logged as an
// eventerrors.InvalidHandle condition; a hit is a routine debug log.
func LogCallbackRemoved(logger *slog.Logger, listName string, ok bool) {
	if !ok {
		err := eventerrors.InvalidHandle(listName)
		if logger != nil {
			logger.Warn("callback handle no longer live",
				slog.String("list", listName),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if logger == nil {
		return
	}
	logger.Debug("callback removed",
		slog.String("list", listName),
		slog.Bool("found", true),
	)
}

// LogEventEnqueued logs an event landing on an EventQueue's busy list.
func LogEventEnqueued(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("event enqueued",
		slog.String("key", key),
	)
}

// LogEventProcessed logs the outcome of a Process call.
func LogEventProcessed(logger *slog.Logger, dispatched int, durationMs float64, err error) {
	if logger == nil {
		return
	}
	if err != nil {
		logger.Warn("event queue processed with errors",
			slog.Int("dispatched", dispatched),
			slog.Float64("duration_ms", durationMs),
			slog.String("error", err.Error()),
		)
		return
	}
	logger.Debug("event queue processed",
		slog.Int("dispatched", dispatched),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEventTakeMiss logs a Peek or Take call finding the queue empty, as an
// eventerrors.EmptyQueue condition.
func LogEventTakeMiss(logger *slog.Logger, op string) {
	err := eventerrors.EmptyQueue(op)
	if logger == nil {
		return
	}
	logger.Debug("queue empty",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

// LogWaitTimeout logs a WaitFor call elapsing without an event, as an
// eventerrors.Timeout condition.
func LogWaitTimeout(logger *slog.Logger, op string) {
	err := eventerrors.Timeout(op)
	if logger == nil {
		return
	}
	logger.Debug("wait timed out",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

// LogEventDispatchError logs a single Dispatcher.Invoke failure during
// Process or Dispatch.
func LogEventDispatchError(logger *slog.Logger, key string, err error) {
	if logger == nil {
		return
	}
	logger.Error("event dispatch failed",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// TimedOperation starts a stopwatch and returns a function that reports
// the elapsed time in milliseconds when called.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
