package appbase

import (
	"time"
)

const (
	defaultHandlerCapacity = 2048
	defaultIdleInitial     = 1 * time.Millisecond
	defaultIdleMax         = 50 * time.Millisecond
)

// Options configure an ExecQueue.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Metrics receives enqueue and execution counters.
	// Nil selects NoopMetrics.
	Metrics MetricsPolicy

	// InitialCapacity preallocates the handler heap.
	InitialCapacity int
}

func (o *Options) FillDefaults() {
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
	if o.InitialCapacity <= 0 {
		o.InitialCapacity = defaultHandlerCapacity
	}
}

// IdlePolicy describes how long a Driver sleeps between polls of an
// empty queue. Zero values are treated as "use defaults".
type IdlePolicy struct {
	// Initial is the first idle backoff duration.
	Initial time.Duration

	// Max is the cap for idle backoff duration.
	Max time.Duration
}

// DriverOptions configure a Driver.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type DriverOptions struct {
	// Idle controls the backoff applied between polls of an empty queue.
	Idle IdlePolicy

	// Pin locks the driver's goroutine to an OS thread and restricts that
	// thread to the CPU given by PinCPU. Linux only; elsewhere the pin
	// attempt is logged and skipped.
	Pin    bool
	PinCPU int

	// OnPanic, when set, receives values recovered from panicking
	// handlers and the drain continues. When nil, a handler panic aborts
	// the drain and propagates out of Run.
	OnPanic func(recovered any)
}

func (o *DriverOptions) FillDefaults() {
	if o.Idle.Initial <= 0 {
		o.Idle.Initial = defaultIdleInitial
	}
	if o.Idle.Max <= 0 {
		o.Idle.Max = defaultIdleMax
	}
}
