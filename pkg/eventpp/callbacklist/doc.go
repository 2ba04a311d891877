// Package callbacklist provides a concurrent, mutation-safe, invocation-safe
// doubly-linked list of callbacks addressed by stable handles.
//
// # Overview
//
// A CallbackList holds callbacks of one prototype in registration order and
// lets many goroutines append, prepend, insert, remove, and invoke
// concurrently without any callback observing a torn or corrupted list:
//
//   - A callback being invoked cannot be destroyed mid-call.
//   - A callback removed during a traversal is skipped by that traversal.
//   - A callback appended during a traversal is not observed by that
//     traversal.
//
// Go has no variadic generics, so the single C++-style
// `CallbackList<Prototype, Policies>` template becomes one exported type per
// supported arity, all built on the same internal traversal engine:
//
//	callbacklist.CallbackList0[R]
//	callbacklist.CallbackList1[A1, R]
//	callbacklist.CallbackList2[A1, A2, R]
//	callbacklist.CallbackList3[A1, A2, A3, R]
//
// # Handles
//
// Append, Prepend, and Insert return a Handle: a weak, non-owning reference
// implemented on top of the standard library's weak.Pointer. A Handle never
// keeps its Node alive; Remove and Insert observe a Handle's liveness
// atomically with respect to concurrent removal.
//
// # Threading
//
// ListPolicy.Threading selects between mutex-protected mutation
// (ThreadingMulti, the default) and a no-op lock (ThreadingSingle) for
// lists that are only ever touched from one goroutine.
package callbacklist
