package callbacklist

// CallbackList3 is a CallbackList for the three-argument prototype
// func(A1, A2, A3) R.
type CallbackList3[A1, A2, A3, R any] struct {
	engine *list[func(A1, A2, A3) R]
}

// NewCallbackList3 creates an empty CallbackList3 configured by policy.
func NewCallbackList3[A1, A2, A3, R any](policy ListPolicy) *CallbackList3[A1, A2, A3, R] {
	return &CallbackList3[A1, A2, A3, R]{engine: newList[func(A1, A2, A3) R](policy)}
}

// Empty reports whether the list currently has no callbacks.
func (c *CallbackList3[A1, A2, A3, R]) Empty() bool {
	return c.engine.empty()
}

// Append adds cb as the new tail.
func (c *CallbackList3[A1, A2, A3, R]) Append(cb func(A1, A2, A3) R) Handle[func(A1, A2, A3) R] {
	return handleFor(c.engine.append(cb))
}

// Prepend adds cb as the new head.
func (c *CallbackList3[A1, A2, A3, R]) Prepend(cb func(A1, A2, A3) R) Handle[func(A1, A2, A3) R] {
	return handleFor(c.engine.prepend(cb))
}

// Insert adds cb immediately before the callback identified by before, or
// appends it if before no longer refers to a live callback.
func (c *CallbackList3[A1, A2, A3, R]) Insert(cb func(A1, A2, A3) R, before Handle[func(A1, A2, A3) R]) Handle[func(A1, A2, A3) R] {
	return handleFor(c.engine.insert(cb, before))
}

// Remove unlinks the callback identified by handle.
func (c *CallbackList3[A1, A2, A3, R]) Remove(handle Handle[func(A1, A2, A3) R]) bool {
	return c.engine.remove(handle)
}

// ForEachHandle visits every live callback's Handle in list order.
func (c *CallbackList3[A1, A2, A3, R]) ForEachHandle(visit func(Handle[func(A1, A2, A3) R])) {
	c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		visit(handleFor(n))
		return true
	})
}

// ForEachCallback visits every live callback in list order.
func (c *CallbackList3[A1, A2, A3, R]) ForEachCallback(visit func(func(A1, A2, A3) R)) {
	c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		visit(n.callback)
		return true
	})
}

// ForEachHandleCallback visits every live (Handle, callback) pair.
func (c *CallbackList3[A1, A2, A3, R]) ForEachHandleCallback(visit func(Handle[func(A1, A2, A3) R], func(A1, A2, A3) R)) {
	c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		visit(handleFor(n), n.callback)
		return true
	})
}

// ForEachHandleIf visits Handles, stopping at the first false return.
func (c *CallbackList3[A1, A2, A3, R]) ForEachHandleIf(visit func(Handle[func(A1, A2, A3) R]) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		return visit(handleFor(n))
	})
}

// ForEachCallbackIf visits callbacks, stopping at the first false return.
func (c *CallbackList3[A1, A2, A3, R]) ForEachCallbackIf(visit func(func(A1, A2, A3) R) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		return visit(n.callback)
	})
}

// Invoke calls every live callback with (a1, a2, a3), consulting
// CanContinueInvoking after each call.
func (c *CallbackList3[A1, A2, A3, R]) Invoke(a1 A1, a2 A2, a3 A3) {
	c.engine.forEachIf(func(n *node[func(A1, A2, A3) R]) bool {
		n.callback(a1, a2, a3)
		return c.engine.policy.canContinue(a1, a2, a3)
	})
}

// Close tears down the list.
func (c *CallbackList3[A1, A2, A3, R]) Close() {
	c.engine.teardown()
}
