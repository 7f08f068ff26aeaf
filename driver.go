package appbase

import (
	"context"
	"runtime"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// Driver repeatedly drains an ExecQueue on the calling goroutine.
//
// The queue itself owns no goroutines; a Driver is the polling loop the
// surrounding runtime runs to execute pending handlers. Several drivers
// may drain one queue concurrently — each pop hands a different handler
// to a different driver.
type Driver struct {
	queue *ExecQueue
	opts  DriverOptions
}

// NewDriver creates a Driver for q.
func NewDriver(q *ExecQueue, opts DriverOptions) *Driver {
	opts.FillDefaults()
	return &Driver{queue: q, opts: opts}
}

// Run drains the queue until ctx is done, sleeping with backoff while
// the queue is empty. It returns ctx.Err() on cancellation.
//
// If no OnPanic handler is configured, a panicking handler aborts the
// drain and the panic propagates to Run's caller; pending handlers stay
// queued and a new Run call picks them up.
func (d *Driver) Run(ctx context.Context) error {
	logger := lg.FromContext(ctx)

	if d.opts.Pin {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := PinToCPU(d.opts.PinCPU); err != nil {
			logger.Warn("driver: cpu pinning failed",
				lg.Int("cpu", d.opts.PinCPU),
				lg.Any("error", err),
			)
		}
	}

	logger.Info("driver: draining started")
	for {
		select {
		case <-ctx.Done():
			logger.Info("driver: stopped", lg.Any("reason", ctx.Err()))
			return ctx.Err()
		default:
		}

		if d.step() {
			continue
		}

		if err := d.idle(ctx); err != nil {
			logger.Info("driver: stopped", lg.Any("reason", err))
			return err
		}
	}
}

// step runs at most one handler and reports whether more work remains.
// After a recovered panic it reports false; the idle loop re-checks the
// queue length before sleeping, so remaining work is picked up next turn.
func (d *Driver) step() (more bool) {
	if d.opts.OnPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				d.opts.OnPanic(r)
			}
		}()
	}
	return d.queue.RunOne()
}

// idle sleeps with backoff until work appears or ctx is done.
func (d *Driver) idle(ctx context.Context) error {
	bo := boff.New(d.opts.Idle.Initial, d.opts.Idle.Max, time.Now().UnixNano())
	for d.queue.Len() == 0 {
		timer := time.NewTimer(bo.Next())
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer is fired
			}
			return ctx.Err()
		}
	}
	return nil
}
