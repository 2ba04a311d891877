package callbacklist

// CallbackList0 is a CallbackList for the zero-argument prototype
// func() R. R is typically struct{} or error; the return value is never
// collected by Invoke, matching the original's operator(), which invokes
// each callback purely for effect.
type CallbackList0[R any] struct {
	engine *list[func() R]
}

// NewCallbackList0 creates an empty CallbackList0 configured by policy.
func NewCallbackList0[R any](policy ListPolicy) *CallbackList0[R] {
	return &CallbackList0[R]{engine: newList[func() R](policy)}
}

// Empty reports whether the list currently has no callbacks.
func (c *CallbackList0[R]) Empty() bool {
	return c.engine.empty()
}

// Append adds cb as the new tail. Callbacks fire in registration order.
func (c *CallbackList0[R]) Append(cb func() R) Handle[func() R] {
	return handleFor(c.engine.append(cb))
}

// Prepend adds cb as the new head.
func (c *CallbackList0[R]) Prepend(cb func() R) Handle[func() R] {
	return handleFor(c.engine.prepend(cb))
}

// Insert adds cb immediately before the callback identified by before, or
// appends it if before no longer refers to a live callback.
func (c *CallbackList0[R]) Insert(cb func() R, before Handle[func() R]) Handle[func() R] {
	return handleFor(c.engine.insert(cb, before))
}

// Remove unlinks the callback identified by handle. Returns true iff a
// live callback was found and removed; false on a handle already removed.
func (c *CallbackList0[R]) Remove(handle Handle[func() R]) bool {
	return c.engine.remove(handle)
}

// ForEachHandle visits every live callback's Handle in list order.
func (c *CallbackList0[R]) ForEachHandle(visit func(Handle[func() R])) {
	c.engine.forEachIf(func(n *node[func() R]) bool {
		visit(handleFor(n))
		return true
	})
}

// ForEachCallback visits every live callback in list order.
func (c *CallbackList0[R]) ForEachCallback(visit func(func() R)) {
	c.engine.forEachIf(func(n *node[func() R]) bool {
		visit(n.callback)
		return true
	})
}

// ForEachHandleCallback visits every live (Handle, callback) pair in list
// order.
func (c *CallbackList0[R]) ForEachHandleCallback(visit func(Handle[func() R], func() R)) {
	c.engine.forEachIf(func(n *node[func() R]) bool {
		visit(handleFor(n), n.callback)
		return true
	})
}

// ForEachHandleIf visits Handles in list order, stopping at the first
// false return.
func (c *CallbackList0[R]) ForEachHandleIf(visit func(Handle[func() R]) bool) bool {
	return c.engine.forEachIf(func(n *node[func() R]) bool {
		return visit(handleFor(n))
	})
}

// ForEachCallbackIf visits callbacks in list order, stopping at the first
// false return.
func (c *CallbackList0[R]) ForEachCallbackIf(visit func(func() R) bool) bool {
	return c.engine.forEachIf(func(n *node[func() R]) bool {
		return visit(n.callback)
	})
}

// Invoke calls every live callback in list order, consulting the policy's
// CanContinueInvoking predicate after each call and stopping early when it
// returns false. A panicking callback is not recovered; it propagates to
// the caller, aborting the remaining traversal.
func (c *CallbackList0[R]) Invoke() {
	c.engine.forEachIf(func(n *node[func() R]) bool {
		n.callback()
		return c.engine.policy.canContinue()
	})
}

// Close tears down the list, severing every internal link so large
// payloads are not kept reachable a moment longer than necessary.
func (c *CallbackList0[R]) Close() {
	c.engine.teardown()
}
