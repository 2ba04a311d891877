package callbacklist

// CallbackList2 is a CallbackList for the two-argument prototype
// func(A1, A2) R.
type CallbackList2[A1, A2, R any] struct {
	engine *list[func(A1, A2) R]
}

// NewCallbackList2 creates an empty CallbackList2 configured by policy.
func NewCallbackList2[A1, A2, R any](policy ListPolicy) *CallbackList2[A1, A2, R] {
	return &CallbackList2[A1, A2, R]{engine: newList[func(A1, A2) R](policy)}
}

// Empty reports whether the list currently has no callbacks.
func (c *CallbackList2[A1, A2, R]) Empty() bool {
	return c.engine.empty()
}

// Append adds cb as the new tail.
func (c *CallbackList2[A1, A2, R]) Append(cb func(A1, A2) R) Handle[func(A1, A2) R] {
	return handleFor(c.engine.append(cb))
}

// Prepend adds cb as the new head.
func (c *CallbackList2[A1, A2, R]) Prepend(cb func(A1, A2) R) Handle[func(A1, A2) R] {
	return handleFor(c.engine.prepend(cb))
}

// Insert adds cb immediately before the callback identified by before, or
// appends it if before no longer refers to a live callback.
func (c *CallbackList2[A1, A2, R]) Insert(cb func(A1, A2) R, before Handle[func(A1, A2) R]) Handle[func(A1, A2) R] {
	return handleFor(c.engine.insert(cb, before))
}

// Remove unlinks the callback identified by handle.
func (c *CallbackList2[A1, A2, R]) Remove(handle Handle[func(A1, A2) R]) bool {
	return c.engine.remove(handle)
}

// ForEachHandle visits every live callback's Handle in list order.
func (c *CallbackList2[A1, A2, R]) ForEachHandle(visit func(Handle[func(A1, A2) R])) {
	c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		visit(handleFor(n))
		return true
	})
}

// ForEachCallback visits every live callback in list order.
func (c *CallbackList2[A1, A2, R]) ForEachCallback(visit func(func(A1, A2) R)) {
	c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		visit(n.callback)
		return true
	})
}

// ForEachHandleCallback visits every live (Handle, callback) pair.
func (c *CallbackList2[A1, A2, R]) ForEachHandleCallback(visit func(Handle[func(A1, A2) R], func(A1, A2) R)) {
	c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		visit(handleFor(n), n.callback)
		return true
	})
}

// ForEachHandleIf visits Handles, stopping at the first false return.
func (c *CallbackList2[A1, A2, R]) ForEachHandleIf(visit func(Handle[func(A1, A2) R]) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		return visit(handleFor(n))
	})
}

// ForEachCallbackIf visits callbacks, stopping at the first false return.
func (c *CallbackList2[A1, A2, R]) ForEachCallbackIf(visit func(func(A1, A2) R) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		return visit(n.callback)
	})
}

// Invoke calls every live callback with (a1, a2), consulting
// CanContinueInvoking after each call.
func (c *CallbackList2[A1, A2, R]) Invoke(a1 A1, a2 A2) {
	c.engine.forEachIf(func(n *node[func(A1, A2) R]) bool {
		n.callback(a1, a2)
		return c.engine.policy.canContinue(a1, a2)
	})
}

// Close tears down the list.
func (c *CallbackList2[A1, A2, R]) Close() {
	c.engine.teardown()
}
