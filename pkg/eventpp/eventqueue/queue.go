package eventqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ArgumentPassingMode documents how a policy intends stored arguments to be
// treated at dispatch time. Since Args is always []any and any already
// boxes its value, ByValue and ByReference don't change runtime behavior.
// This field records caller intent (e.g., "these pointer arguments must
// not be mutated after dispatch") for documentation and for Dispatchers
// that want to assert on it, not a mechanism this package enforces itself.
type ArgumentPassingMode int

const (
	// ByValue is the default: arguments are treated as immutable copies.
	ByValue ArgumentPassingMode = iota

	// ByReference documents that at least one argument is a pointer whose
	// pointee a Dispatcher may read after Process returns.
	ByReference
)

// QueuePolicy configures an EventQueue at construction time.
type QueuePolicy[Key comparable] struct {
	// Lookup resolves a Key to the Dispatcher that should handle it.
	// Required: Process has nothing to invoke without it.
	Lookup LookupFunc[Key]

	// OnDispatchError, if set, is called for each error a Dispatcher
	// returns during Process, in addition to that error being folded
	// into Process's aggregate return value. Useful for routing failures
	// to observability without changing Process's control flow.
	OnDispatchError func(key Key, err error)

	// ArgumentPassingMode documents the intended treatment of stored
	// arguments. Default: ByValue.
	ArgumentPassingMode ArgumentPassingMode

	// DefaultWaitTimeout is the duration WaitDefault blocks for. Zero
	// means WaitDefault behaves like Wait with no bound.
	DefaultWaitTimeout time.Duration
}

// EventQueue is an in-process producer/consumer FIFO of typed events. The
// zero value is not usable; construct with NewEventQueue.
type EventQueue[Key comparable] struct {
	mu   sync.Mutex
	cond *sync.Cond

	busyHead, busyTail *queueNode[Key]
	idleHead           *queueNode[Key]

	suppress atomic.Int32
	policy   QueuePolicy[Key]
}

// NewEventQueue creates an empty EventQueue configured by policy.
func NewEventQueue[Key comparable](policy QueuePolicy[Key]) *EventQueue[Key] {
	q := &EventQueue[Key]{policy: policy}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// acquireNode takes a node from the idle freelist, or allocates a fresh one
// if the freelist is empty. Caller must hold q.mu.
func (q *EventQueue[Key]) acquireNode() *queueNode[Key] {
	if q.idleHead == nil {
		return &queueNode[Key]{}
	}
	n := q.idleHead
	q.idleHead = n.next
	n.next = nil
	return n
}

// releaseNode clears n's event payload and returns it to the idle
// freelist, so a large argument does not stay reachable through a reused
// node. Caller must hold q.mu.
func (q *EventQueue[Key]) releaseNode(n *queueNode[Key]) {
	n.event = QueuedEvent[Key]{}
	n.next = q.idleHead
	q.idleHead = n
}

// Enqueue appends (key, args…) to the busy list and, unless notify is
// currently suppressed by an outstanding DisableNotify token, wakes one
// waiter blocked in Wait or WaitFor.
func (q *EventQueue[Key]) Enqueue(ctx context.Context, key Key, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	n := q.acquireNode()
	n.event = QueuedEvent[Key]{Key: key, Args: args}

	if q.busyHead == nil {
		q.busyHead = n
		q.busyTail = n
	} else {
		q.busyTail.next = n
		q.busyTail = n
	}

	suppressed := q.suppress.Load() > 0
	q.mu.Unlock()

	if !suppressed {
		q.cond.Signal()
	}
	return nil
}

// Empty reports whether the busy list currently has no nodes. Advisory
// under concurrency: another goroutine may enqueue or drain immediately
// after this returns.
func (q *EventQueue[Key]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.busyHead == nil
}

// Peek copies the head event into out without removing it from the busy
// list. Returns false, leaving out untouched, if the queue is empty.
func (q *EventQueue[Key]) Peek(out *QueuedEvent[Key]) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.busyHead == nil {
		return false
	}
	*out = q.busyHead.event
	return true
}

// Take moves the head event into out and returns its node to the idle
// list. Returns false, leaving out untouched, if the queue is empty.
func (q *EventQueue[Key]) Take(out *QueuedEvent[Key]) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.busyHead
	if n == nil {
		return false
	}

	q.busyHead = n.next
	if q.busyHead == nil {
		q.busyTail = nil
	}

	*out = n.event
	q.releaseNode(n)
	return true
}

// Dispatch invokes the Dispatcher registered for event.Key with
// event.Args directly, bypassing the queue entirely.
func (q *EventQueue[Key]) Dispatch(ctx context.Context, event QueuedEvent[Key]) error {
	d, ok := q.policy.Lookup(event.Key)
	if !ok {
		return nil
	}
	return d.Invoke(ctx, event.Args)
}

// Process dispatches every event currently in the busy list and returns
// how many were dispatched. It swaps the entire busy list into a private
// processing list under the queue mutex, then walks that private list with
// the mutex released, so events enqueued while Process runs land in a
// fresh busy list and are left for the next call. Concurrent Process calls
// are safe: each dispatches only what it swapped out, so every event is
// dispatched exactly once.
//
// If ctx is cancelled partway through, the remaining un-dispatched events
// are pushed back onto the front of the busy list (preserving their
// relative order) rather than lost, and Process returns ctx.Err() alongside
// the count already dispatched.
func (q *EventQueue[Key]) Process(ctx context.Context) (int, error) {
	q.mu.Lock()
	processing := q.busyHead
	q.busyHead = nil
	q.busyTail = nil
	q.mu.Unlock()

	var dispatched int
	var errs []error

	for n := processing; n != nil; {
		if err := ctx.Err(); err != nil {
			q.requeueFront(n)
			errs = append(errs, err)
			return dispatched, errors.Join(errs...)
		}

		next := n.next
		d, ok := q.policy.Lookup(n.event.Key)
		if ok {
			if err := d.Invoke(ctx, n.event.Args); err != nil {
				if q.policy.OnDispatchError != nil {
					q.policy.OnDispatchError(n.event.Key, err)
				}
				errs = append(errs, err)
			}
		}
		dispatched++

		q.mu.Lock()
		q.releaseNode(n)
		q.mu.Unlock()

		n = next
	}

	if len(errs) == 0 {
		return dispatched, nil
	}
	return dispatched, errors.Join(errs...)
}

// requeueFront splices the node chain starting at n back onto the front of
// the busy list, preserving its internal order.
func (q *EventQueue[Key]) requeueFront(n *queueNode[Key]) {
	if n == nil {
		return
	}
	tail := n
	for tail.next != nil {
		tail = tail.next
	}

	q.mu.Lock()
	tail.next = q.busyHead
	q.busyHead = n
	if q.busyTail == nil {
		q.busyTail = tail
	}
	q.mu.Unlock()
}

// Wait blocks until at least one event becomes queued or ctx is cancelled.
// It handles spurious wakeups internally by re-checking the busy list
// under the condition variable's lock. A successful return does not
// guarantee the queue is still non-empty: another goroutine may drain it
// first.
func (q *EventQueue[Key]) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for q.busyHead == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.cond.Wait()
	}
	return nil
}

// WaitFor blocks like Wait but for at most d. It returns true if the queue
// is non-empty when the wait ends, false on timeout, and a non-nil error
// only if ctx itself (not the bound d imposes) is cancelled first.
func (q *EventQueue[Key]) WaitFor(ctx context.Context, d time.Duration) (bool, error) {
	bounded, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := q.Wait(bounded)

	q.mu.Lock()
	nonEmpty := q.busyHead != nil
	q.mu.Unlock()

	if err != nil && ctx.Err() != nil {
		return nonEmpty, ctx.Err()
	}
	return nonEmpty, nil
}

// WaitDefault waits using policy.DefaultWaitTimeout, or blocks unboundedly
// (like Wait) if that timeout is zero. It exists so deployment-time config
// can tune wait behavior without threading a duration through call sites.
func (q *EventQueue[Key]) WaitDefault(ctx context.Context) (bool, error) {
	if q.policy.DefaultWaitTimeout <= 0 {
		if err := q.Wait(ctx); err != nil {
			return false, err
		}
		q.mu.Lock()
		nonEmpty := q.busyHead != nil
		q.mu.Unlock()
		return nonEmpty, nil
	}
	return q.WaitFor(ctx, q.policy.DefaultWaitTimeout)
}
