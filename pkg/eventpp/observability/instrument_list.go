package observability

import (
	"log/slog"

	"github.com/mediabuff/eventpp/pkg/eventpp/callbacklist"
)

// removableList is satisfied by every CallbackListN's Remove method. It
// lets InstrumentedRemove log the outcome without depending on a specific
// arity.
type removableList[Callback any] interface {
	Remove(callbacklist.Handle[Callback]) bool
}

// InstrumentedRemove wraps list.Remove(handle) with structured logging,
// following the same decorator pattern as InstrumentedQueue: the
// callbacklist core stays free of any slog dependency, and callers who
// don't want the overhead call list.Remove directly. A miss (handle no
// longer live) is logged via LogCallbackRemoved as an
// eventerrors.InvalidHandle condition.
func InstrumentedRemove[Callback any](logger *slog.Logger, listName string, list removableList[Callback], handle callbacklist.Handle[Callback]) bool {
	ok := list.Remove(handle)
	LogCallbackRemoved(logger, listName, ok)
	return ok
}
