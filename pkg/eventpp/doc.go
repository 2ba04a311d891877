// Package eventpp provides in-process event dispatch and queuing:
// callbacklist.CallbackListN for direct, synchronous multi-listener
// dispatch, and eventqueue.EventQueue for a producer/consumer FIFO that
// decouples enqueue from dispatch. registry.Registry binds the two
// together by mapping an application's event keys to the CallbackList
// (wrapped as an eventqueue.Dispatcher) that should handle them.
//
// See the subpackages for details:
//   - callbacklist: doubly-linked callback lists with safe concurrent
//     traversal, mutation, and removal.
//   - eventqueue: the FIFO queue, its node-recycling free list, and the
//     DisableNotify scoped suppression token.
//   - registry: the Key → Dispatcher binding table.
//   - eventerrors: the shared error taxonomy.
//   - observability: structured logging, metrics, and tracing helpers.
//   - config: typed configuration extraction and policy construction.
package eventpp
