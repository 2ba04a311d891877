package eventqueue

import "context"

// Dispatcher is the minimal interface EventQueue needs to deliver a queued
// event. A *callbacklist.CallbackListN, wrapped with one of the AsDispatcher
// adapters in package callbacklist, satisfies it; so does anything else
// that can turn a key's argument list into a call.
type Dispatcher interface {
	Invoke(ctx context.Context, args []any) error
}

// LookupFunc resolves a Key to the Dispatcher registered for it. A
// *registry.Registry[Key]'s Lookup method has this shape and is the
// typical value passed as QueuePolicy.Lookup.
type LookupFunc[Key comparable] func(key Key) (Dispatcher, bool)
