// Package appbase provides a priority-ordered execution queue usable as a
// drop-in execution context for an asynchronous runtime.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Strict priority ordering with FIFO ties within a priority tier
//   - No inline execution: every submission is deferred into the queue
//   - Short, bounded critical sections; handlers never run under the lock
//   - No internal goroutines; execution happens on the caller's goroutine
//
// Architecture overview
//
// The package is composed of three loosely coupled layers:
//
//  1. Queue (ExecQueue)
//     A mutex-guarded max-heap of pending handlers ordered by
//     (priority, sequence). Enqueue, pop-and-run-one, and drain-all are
//     the only operations; the queue never runs work while holding its
//     lock, so handlers may freely submit further work.
//
//  2. Submission (Executor)
//     A cheap copyable handle bound to a queue and a fixed priority.
//     Its Dispatch, Post, and Defer verbs are deliberately equivalent:
//     all of them enqueue. Completions from third-party asynchronous
//     APIs are funneled through the same queue via Wrap.
//
//  3. Draining (Driver)
//     An optional polling loop that repeatedly asks the queue for its
//     highest-priority handler, backing off while the queue is idle.
//     Multiple drivers may drain the same queue concurrently.
//
// Ordering model
//
// Handlers are ordered by priority (higher value first) and, within equal
// priority, by submission order. The tie-break key is a shared counter
// that starts at the maximum uint64 and decrements on every enqueue, so
// earlier submissions compare as larger and sort first. The counter gives
// ~18 quintillion unique slots; running it to zero is treated as fatal
// resource exhaustion rather than silent wraparound.
//
// Error handling
//
// Queue operations do not fail for normal inputs. An empty queue is the
// normal termination signal for a drain loop, not an error. Panics raised
// by a handler propagate to whoever called RunOne or RunAll; the queue
// performs no recovery, retry, or requeue. The Driver can optionally
// recover and report handler panics via a user handler.
package appbase
