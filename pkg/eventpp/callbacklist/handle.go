package callbacklist

import "weak"

// Handle is a non-owning, weak reference to a Node inside a CallbackList.
// It targets Insert and Remove and identifies a callback to visitors.
//
// A Handle never extends the lifetime of the Node it refers to: once the
// Node is removed and nothing else keeps it reachable, the Handle simply
// stops resolving. The zero value is the empty Handle: it never resolves
// and Alive always reports false for it, matching the original's
// default-constructed handle.
type Handle[Callback any] struct {
	ptr weak.Pointer[node[Callback]]
}

// Alive reports whether the Node this Handle refers to is still linked
// into its list. It is atomic with respect to concurrent Remove: either
// this call observes the Node before removal (true) or after (false),
// never a torn in-between state, because removal clears the Node's
// counter under the same list mutex that every other mutation uses.
func (h Handle[Callback]) Alive() bool {
	n := h.ptr.Value()
	if n == nil {
		return false
	}
	return n.counter.Load() != 0
}

// resolve returns the live Node behind h, or nil if h is empty, expired,
// or refers to a removed Node.
func (h Handle[Callback]) resolve() *node[Callback] {
	n := h.ptr.Value()
	if n == nil || n.counter.Load() == 0 {
		return nil
	}
	return n
}

func handleFor[Callback any](n *node[Callback]) Handle[Callback] {
	return Handle[Callback]{ptr: weak.Make(n)}
}
