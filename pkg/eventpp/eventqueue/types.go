package eventqueue

import "fmt"

// QueuedEvent is one (key, args…) tuple held in an EventQueue. Args are
// stored as boxed any values; a Dispatcher is responsible for asserting
// them back to concrete types.
type QueuedEvent[Key comparable] struct {
	Key  Key
	Args []any
}

// At returns the value at accessor position i: position 0 is Key (boxed as
// any), positions 1..len(Args) are Args[i-1]. It panics on an out-of-range
// position, matching the original's accessor being a compile-time bounds
// check rather than a runtime one. Callers that don't know the arity
// ahead of time should index Args directly instead.
func (e QueuedEvent[Key]) At(i int) any {
	if i == 0 {
		return e.Key
	}
	if i-1 < len(e.Args) {
		return e.Args[i-1]
	}
	panic(fmt.Sprintf("eventqueue: accessor position %d out of range for event with %d args", i, len(e.Args)))
}

// queueNode holds one QueuedEvent and links into exactly one of the busy,
// idle, or processing lists at any time. Nodes are recycled between the
// idle list and the busy list rather than freed, so a queue under
// sustained load doesn't churn the allocator once its working set of
// in-flight nodes stabilizes.
type queueNode[Key comparable] struct {
	event QueuedEvent[Key]
	next  *queueNode[Key]
}
