// Package eventerrors provides a small, categorized error taxonomy shared
// by callbacklist, eventqueue, and observability.
//
// Most of the operations in those packages report failure with a bare
// bool return, no error value, because InvalidHandle, EmptyQueue, and
// Timeout are all expected, routine outcomes, not exceptional ones. Those
// bool returns stay the primary
// signal; the observability package (LogCallbackRemoved,
// InstrumentedQueue.Take/WaitFor) wraps the same conditions in a
// CategorizedError purely so they can be logged with structure instead of
// an ad-hoc string. UserCallbackFailure is different: it is the actual
// error value callbacklist's Dispatcher adapters return when a Process or
// Dispatch call's arguments don't match a bound CallbackList's arity or
// types.
package eventerrors

import "fmt"

// Category classifies why an event-dispatch operation failed.
type Category int

const (
	// CategoryInvalidHandle: a Handle passed to Remove or Insert no
	// longer refers to a live Node.
	CategoryInvalidHandle Category = iota

	// CategoryEmptyQueue: Peek or Take was called on an empty queue.
	CategoryEmptyQueue

	// CategoryTimeout: WaitFor elapsed without an event becoming queued.
	CategoryTimeout

	// CategoryUserCallbackFailure: a Dispatcher could not invoke its
	// callbacks because the event's arguments did not match their arity or
	// types. A panicking callback is not reported under this category; the
	// panic propagates to the caller.
	CategoryUserCallbackFailure
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInvalidHandle:
		return "invalid_handle"
	case CategoryEmptyQueue:
		return "empty_queue"
	case CategoryTimeout:
		return "timeout"
	case CategoryUserCallbackFailure:
		return "user_callback_failure"
	default:
		return "unknown"
	}
}

// CategorizedError wraps an error with the category it falls into and the
// context in which it occurred.
type CategorizedError struct {
	// Err is the underlying error, if any. May be nil for categories
	// (like InvalidHandle) that are routine conditions rather than
	// wrapped failures.
	Err error

	// Category classifies the error.
	Category Category

	// Context describes what operation was being attempted, e.g. a
	// queue key or callback-list name.
	Context string
}

// Error implements the error interface.
func (e *CategorizedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Context, e.Category, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Category)
}

// Unwrap returns the underlying error.
func (e *CategorizedError) Unwrap() error {
	return e.Err
}

// InvalidHandle creates a CategorizedError for a Handle that no longer
// refers to a live Node.
func InvalidHandle(context string) *CategorizedError {
	return &CategorizedError{Category: CategoryInvalidHandle, Context: context}
}

// EmptyQueue creates a CategorizedError for an operation attempted on an
// empty queue.
func EmptyQueue(context string) *CategorizedError {
	return &CategorizedError{Category: CategoryEmptyQueue, Context: context}
}

// Timeout creates a CategorizedError for a WaitFor that elapsed without an
// event.
func Timeout(context string) *CategorizedError {
	return &CategorizedError{Category: CategoryTimeout, Context: context}
}

// UserCallbackFailure wraps an argument-shape mismatch (or other reported
// failure) at the Dispatcher boundary. A panicking callback itself is not
// wrapped here: it propagates to the caller of Invoke/Process/Dispatch
// uncaught.
func UserCallbackFailure(err error, context string) *CategorizedError {
	return &CategorizedError{Err: err, Category: CategoryUserCallbackFailure, Context: context}
}
