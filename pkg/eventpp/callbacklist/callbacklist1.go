package callbacklist

// CallbackList1 is a CallbackList for the one-argument prototype
// func(A1) R.
type CallbackList1[A1, R any] struct {
	engine *list[func(A1) R]
}

// NewCallbackList1 creates an empty CallbackList1 configured by policy.
func NewCallbackList1[A1, R any](policy ListPolicy) *CallbackList1[A1, R] {
	return &CallbackList1[A1, R]{engine: newList[func(A1) R](policy)}
}

// Empty reports whether the list currently has no callbacks.
func (c *CallbackList1[A1, R]) Empty() bool {
	return c.engine.empty()
}

// Append adds cb as the new tail.
func (c *CallbackList1[A1, R]) Append(cb func(A1) R) Handle[func(A1) R] {
	return handleFor(c.engine.append(cb))
}

// Prepend adds cb as the new head.
func (c *CallbackList1[A1, R]) Prepend(cb func(A1) R) Handle[func(A1) R] {
	return handleFor(c.engine.prepend(cb))
}

// Insert adds cb immediately before the callback identified by before, or
// appends it if before no longer refers to a live callback.
func (c *CallbackList1[A1, R]) Insert(cb func(A1) R, before Handle[func(A1) R]) Handle[func(A1) R] {
	return handleFor(c.engine.insert(cb, before))
}

// Remove unlinks the callback identified by handle.
func (c *CallbackList1[A1, R]) Remove(handle Handle[func(A1) R]) bool {
	return c.engine.remove(handle)
}

// ForEachHandle visits every live callback's Handle in list order.
func (c *CallbackList1[A1, R]) ForEachHandle(visit func(Handle[func(A1) R])) {
	c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		visit(handleFor(n))
		return true
	})
}

// ForEachCallback visits every live callback in list order.
func (c *CallbackList1[A1, R]) ForEachCallback(visit func(func(A1) R)) {
	c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		visit(n.callback)
		return true
	})
}

// ForEachHandleCallback visits every live (Handle, callback) pair.
func (c *CallbackList1[A1, R]) ForEachHandleCallback(visit func(Handle[func(A1) R], func(A1) R)) {
	c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		visit(handleFor(n), n.callback)
		return true
	})
}

// ForEachHandleIf visits Handles, stopping at the first false return.
func (c *CallbackList1[A1, R]) ForEachHandleIf(visit func(Handle[func(A1) R]) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		return visit(handleFor(n))
	})
}

// ForEachCallbackIf visits callbacks, stopping at the first false return.
func (c *CallbackList1[A1, R]) ForEachCallbackIf(visit func(func(A1) R) bool) bool {
	return c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		return visit(n.callback)
	})
}

// Invoke calls every live callback with a1, consulting CanContinueInvoking
// after each call.
func (c *CallbackList1[A1, R]) Invoke(a1 A1) {
	c.engine.forEachIf(func(n *node[func(A1) R]) bool {
		n.callback(a1)
		return c.engine.policy.canContinue(a1)
	})
}

// Close tears down the list.
func (c *CallbackList1[A1, R]) Close() {
	c.engine.teardown()
}
