// Package registry implements the event-key dispatch table that binds
// EventQueue keys to the Dispatcher that should handle them. It is
// deliberately outside the callbacklist/eventqueue core: EventQueue only
// needs a LookupFunc, and Registry is simply the obvious concrete type to
// supply one.
package registry

import (
	"fmt"
	"sync"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventqueue"
)

// Registry maps a comparable Key to the Dispatcher registered for it.
type Registry[Key comparable] struct {
	mu    sync.RWMutex
	byKey map[Key]eventqueue.Dispatcher
}

// NewRegistry creates an empty Registry.
func NewRegistry[Key comparable]() *Registry[Key] {
	return &Registry[Key]{byKey: make(map[Key]eventqueue.Dispatcher)}
}

// Bind associates key with d, replacing whatever Dispatcher was previously
// bound to key.
func (r *Registry[Key]) Bind(key Key, d eventqueue.Dispatcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[key] = d
}

// Lookup returns the Dispatcher bound to key, if any. Its signature matches
// eventqueue.LookupFunc[Key], so a method value, r.Lookup, can be assigned
// directly to QueuePolicy.Lookup.
func (r *Registry[Key]) Lookup(key Key) (eventqueue.Dispatcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byKey[key]
	return d, ok
}

// Unbind removes whatever Dispatcher is bound to key. It is a no-op if
// nothing is bound.
func (r *Registry[Key]) Unbind(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byKey, key)
}

// Has reports whether a Dispatcher is currently bound to key.
func (r *Registry[Key]) Has(key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byKey[key]
	return ok
}

// Keys returns every currently bound key, in no particular order.
func (r *Registry[Key]) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	return keys
}

// Range calls fn for every (key, Dispatcher) pair bound at the moment
// Range is called, stopping early if fn returns false. Range takes a
// snapshot under the read lock before iterating, so fn is free to call
// Bind or Unbind on the same Registry without deadlocking.
func (r *Registry[Key]) Range(fn func(Key, eventqueue.Dispatcher) bool) {
	r.mu.RLock()
	type pair struct {
		key Key
		d   eventqueue.Dispatcher
	}
	pairs := make([]pair, 0, len(r.byKey))
	for k, d := range r.byKey {
		pairs = append(pairs, pair{k, d})
	}
	r.mu.RUnlock()

	for _, p := range pairs {
		if !fn(p.key, p.d) {
			return
		}
	}
}

// MustLookup returns the Dispatcher bound to key, panicking if none is
// bound. Intended for setup code where an unbound key is a programming
// error, not a runtime condition to handle gracefully.
func (r *Registry[Key]) MustLookup(key Key) eventqueue.Dispatcher {
	d, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("registry: no dispatcher bound for key %v", key))
	}
	return d
}
