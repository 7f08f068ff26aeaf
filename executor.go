package appbase

// Executor is a lightweight, copyable submission handle bound to a queue
// and a fixed priority. It satisfies the usual executor protocol surface
// (Dispatch/Post/Defer plus work-tracking hooks) by composition: every
// verb forwards to the bound queue's Add.
//
// Executors are comparable: two executors are equal (==) iff they
// reference the same queue instance and carry the same priority.
type Executor struct {
	queue    *ExecQueue
	priority int
}

// Executor returns a submission handle bound to q at the given priority.
func (q *ExecQueue) Executor(priority int) Executor {
	return Executor{queue: q, priority: priority}
}

// Context returns the queue this executor submits into.
func (e Executor) Context() *ExecQueue { return e.queue }

// Priority returns the fixed priority this executor submits at.
func (e Executor) Priority() int { return e.priority }

// Dispatch enqueues fn at the bound priority.
//
// Unlike general-purpose executors, Dispatch never runs fn inline, even
// when called from a handler already executing on the same queue: the
// strict (priority, sequence) ordering holds only if every submission
// goes through the queue's pop protocol.
func (e Executor) Dispatch(fn func()) { e.queue.Add(e.priority, fn) }

// Post enqueues fn at the bound priority.
func (e Executor) Post(fn func()) { e.queue.Add(e.priority, fn) }

// Defer enqueues fn at the bound priority.
func (e Executor) Defer(fn func()) { e.queue.Add(e.priority, fn) }

// OnWorkStarted is a no-op. The queue keeps no count of outstanding work;
// the hook exists for executor protocols that expect it.
func (e Executor) OnWorkStarted() {}

// OnWorkFinished is a no-op, see OnWorkStarted.
func (e Executor) OnWorkFinished() {}

// BoundHandler pairs a callback with the executor it must complete on.
// It is what Wrap hands to third-party asynchronous APIs that expect "a
// callback associated with an executor": when the completing subsystem
// invokes the handler, the callback is enqueued at the bound priority
// rather than run in place, so completions from any subsystem funnel
// through the same queue.
type BoundHandler struct {
	exec Executor
	fn   func()
}

// Wrap binds fn to the given priority on q.
func (q *ExecQueue) Wrap(priority int, fn func()) BoundHandler {
	return BoundHandler{exec: q.Executor(priority), fn: fn}
}

// Executor returns the executor the handler is bound to.
func (h BoundHandler) Executor() Executor { return h.exec }

// Invoke enqueues the wrapped callback on the bound executor. The method
// value h.Invoke is a plain func() and can be passed directly as a
// completion callback.
func (h BoundHandler) Invoke() { h.exec.Post(h.fn) }
