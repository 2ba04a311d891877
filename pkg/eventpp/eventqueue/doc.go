// Package eventqueue implements EventQueue, an in-process producer/consumer
// FIFO that decouples the goroutine enqueuing an event from the goroutine(s)
// dispatching it.
//
// Enqueue appends a QueuedEvent and returns immediately, whatever the
// calling goroutine. Process (typically run from one or more dedicated
// worker goroutines, though nothing prevents calling it from many) drains
// the queue, looking up and invoking whatever Dispatcher is registered for
// each event's Key.
//
// Ready events live on a singly-linked busy list; Process moves nodes it
// takes off the busy list onto an idle list rather than freeing them, so a
// queue under sustained load reuses queueNode allocations instead of
// pressuring the garbage collector on every cycle. Wait and WaitFor block on
// a sync.Cond that Enqueue signals (waking one waiter) whenever it adds
// work, unless the caller has suppressed that signal with DisableNotify;
// releasing the last DisableNotify token broadcasts to every waiter, so an
// enqueue burst made under suppression ends in a single wakeup.
package eventqueue
