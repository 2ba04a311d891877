package callbacklist

import (
	"context"
	"fmt"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventerrors"
)

// Dispatcher0 adapts a *CallbackList0 to the eventqueue.Dispatcher shape
// (Invoke(ctx, []any) error) without this package importing eventqueue:
// the interface is satisfied structurally.
type Dispatcher0[R any] struct {
	list *CallbackList0[R]
}

// AsDispatcher0 wraps list so it can be bound into a Registry and driven
// by an EventQueue.
func AsDispatcher0[R any](list *CallbackList0[R]) *Dispatcher0[R] {
	return &Dispatcher0[R]{list: list}
}

// Invoke requires args to be empty (the zero-arity prototype takes none),
// returning a UserCallbackFailure otherwise, and invokes every live
// callback. ctx is checked for cancellation before invoking.
func (d *Dispatcher0[R]) Invoke(ctx context.Context, args []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) != 0 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("expected 0 args, got %d", len(args)), "callbacklist.Dispatcher0")
	}
	d.list.Invoke()
	return nil
}

// Dispatcher1 adapts a *CallbackList1 to the eventqueue.Dispatcher shape.
type Dispatcher1[A1, R any] struct {
	list *CallbackList1[A1, R]
}

// AsDispatcher1 wraps list so it can be bound into a Registry and driven
// by an EventQueue.
func AsDispatcher1[A1, R any](list *CallbackList1[A1, R]) *Dispatcher1[A1, R] {
	return &Dispatcher1[A1, R]{list: list}
}

// Invoke asserts args[0] to A1 and invokes every live callback with it.
func (d *Dispatcher1[A1, R]) Invoke(ctx context.Context, args []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) != 1 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("expected 1 arg, got %d", len(args)), "callbacklist.Dispatcher1")
	}
	a1, ok := args[0].(A1)
	if !ok {
		return eventerrors.UserCallbackFailure(fmt.Errorf("argument 0 is not assignable to %T", a1), "callbacklist.Dispatcher1")
	}
	d.list.Invoke(a1)
	return nil
}

// Dispatcher2 adapts a *CallbackList2 to the eventqueue.Dispatcher shape.
type Dispatcher2[A1, A2, R any] struct {
	list *CallbackList2[A1, A2, R]
}

// AsDispatcher2 wraps list so it can be bound into a Registry and driven
// by an EventQueue.
func AsDispatcher2[A1, A2, R any](list *CallbackList2[A1, A2, R]) *Dispatcher2[A1, A2, R] {
	return &Dispatcher2[A1, A2, R]{list: list}
}

// Invoke asserts args[0:2] to (A1, A2) and invokes every live callback.
func (d *Dispatcher2[A1, A2, R]) Invoke(ctx context.Context, args []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) != 2 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("expected 2 args, got %d", len(args)), "callbacklist.Dispatcher2")
	}
	a1, ok1 := args[0].(A1)
	a2, ok2 := args[1].(A2)
	if !ok1 || !ok2 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("argument type mismatch: got (%T, %T)", args[0], args[1]), "callbacklist.Dispatcher2")
	}
	d.list.Invoke(a1, a2)
	return nil
}

// Dispatcher3 adapts a *CallbackList3 to the eventqueue.Dispatcher shape.
type Dispatcher3[A1, A2, A3, R any] struct {
	list *CallbackList3[A1, A2, A3, R]
}

// AsDispatcher3 wraps list so it can be bound into a Registry and driven
// by an EventQueue.
func AsDispatcher3[A1, A2, A3, R any](list *CallbackList3[A1, A2, A3, R]) *Dispatcher3[A1, A2, A3, R] {
	return &Dispatcher3[A1, A2, A3, R]{list: list}
}

// Invoke asserts args[0:3] to (A1, A2, A3) and invokes every live callback.
func (d *Dispatcher3[A1, A2, A3, R]) Invoke(ctx context.Context, args []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) != 3 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("expected 3 args, got %d", len(args)), "callbacklist.Dispatcher3")
	}
	a1, ok1 := args[0].(A1)
	a2, ok2 := args[1].(A2)
	a3, ok3 := args[2].(A3)
	if !ok1 || !ok2 || !ok3 {
		return eventerrors.UserCallbackFailure(fmt.Errorf("argument type mismatch: got (%T, %T, %T)", args[0], args[1], args[2]), "callbacklist.Dispatcher3")
	}
	d.list.Invoke(a1, a2, a3)
	return nil
}
