package appbase

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the queue to report enqueue and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncExecuted increments the executed handlers counter.
	IncExecuted()

	// IncQueued increments the pending handlers counter.
	IncQueued()

	// DecQueued decrements the pending counter by n.
	//
	// The queue calls this with n=1 as each handler is popped for
	// execution.
	DecQueued(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of handlers run.
	executed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// queued is the current number of handlers pending.
	queued atomic.Int64
}

// Executed returns the total number of executed handlers.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Queued returns the current number of pending handlers.
// Intended for cold-path observation.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

// IncExecuted increments the executed handlers counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncQueued increments the pending handlers counter by one.
func (m *AtomicMetrics) IncQueued() {
	m.queued.Add(1)
}

// DecQueued decrements the pending handlers counter by n.
func (m *AtomicMetrics) DecQueued(n int64) {
	m.queued.Add(-n)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncExecuted()      {}
func (m *NoopMetrics) IncQueued()        {}
func (m *NoopMetrics) DecQueued(n int64) {}
