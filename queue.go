package appbase

import (
	"container/heap"
	"errors"
	"math"
	"sync"
)

// ErrSequenceExhausted is the panic value raised by Add when the shared
// tie-break counter runs out. The counter starts at math.MaxUint64 and
// decrements once per enqueue, giving ~18 quintillion slots over the
// queue's lifetime; reaching zero is an unrecoverable resource condition,
// not something a running process is expected to hit.
var ErrSequenceExhausted = errors.New("appbase: enqueue sequence counter exhausted")

// queuedHandler is a single pending unit of work together with its
// ordering key. The key is immutable after enqueue; the handler's only
// transition is pending -> executing -> discarded.
type queuedHandler struct {
	fn       func()
	priority int

	// seq is the FIFO tie-break within a priority tier. It is assigned
	// from the queue's shared decrementing counter, so earlier
	// submissions hold larger values and sort first.
	seq uint64

	// index is the handler's current position in the heap, maintained by
	// handlerHeap.Swap as required by heap.Interface.
	index int
}

// handlerHeap is a max-heap of pending handlers ordered by
// (priority, seq), both descending.
type handlerHeap []*queuedHandler

func (h handlerHeap) Len() int { return len(h) }

func (h handlerHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.priority != b.priority {
		return a.priority > b.priority // max-heap
	}
	return a.seq > b.seq // larger seq = submitted earlier
}

func (h handlerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *handlerHeap) Push(x any) {
	it := x.(*queuedHandler)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *handlerHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// ExecQueue is a thread-safe, priority-ordered execution context.
//
// Handlers are submitted with Add (or through an Executor) and released
// for execution in strict (priority, submission order) order by RunOne
// and RunAll. The queue owns no goroutines: execution happens on
// whichever goroutine calls the drain operations, and a handler is
// removed from the queue before it runs, so a handler that re-enters the
// queue cannot observe itself.
//
// Enqueue and pop are each atomic under a single mutex; handler execution
// is never covered by the lock, so concurrent RunOne callers can each be
// executing a different handler while third parties keep enqueueing.
type ExecQueue struct {
	mu       sync.Mutex
	handlers handlerHeap

	// seq is the shared tie-break counter. Guarded by mu.
	seq uint64

	metrics MetricsPolicy
}

// New creates an ExecQueue. New(Options{}) yields a queue with defaults.
func New(opts Options) *ExecQueue {
	opts.FillDefaults()
	q := &ExecQueue{
		handlers: make(handlerHeap, 0, opts.InitialCapacity), // preallocate
		seq:      math.MaxUint64,
		metrics:  opts.Metrics,
	}
	heap.Init(&q.handlers)
	return q
}

// Add enqueues fn at the given priority.
//
// Submission is fire-and-forget: Add never fails for normal inputs and
// never runs fn inline. Any handler enqueued before a given pop begins is
// visible to that pop. Add panics with ErrSequenceExhausted if the
// tie-break counter has run out.
func (q *ExecQueue) Add(priority int, fn func()) {
	q.mu.Lock()
	if q.seq == 0 {
		q.mu.Unlock()
		panic(ErrSequenceExhausted)
	}
	q.seq--
	heap.Push(&q.handlers, &queuedHandler{fn: fn, priority: priority, seq: q.seq})
	q.mu.Unlock()

	q.metrics.IncQueued()
}

// popHighest removes and returns the highest-ordered pending handler.
func (q *ExecQueue) popHighest() (*queuedHandler, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.handlers) == 0 {
		return nil, false
	}
	return heap.Pop(&q.handlers).(*queuedHandler), true
}

// RunOne pops the single highest-ordered pending handler, if any, and
// runs it outside the lock. It reports whether any handler remained
// pending after the call, which pollers use to decide whether to keep
// draining. On an empty queue RunOne is a no-op and returns false.
//
// A panic raised by the handler propagates to the caller; the handler is
// not requeued.
func (q *ExecQueue) RunOne() bool {
	if h, ok := q.popHighest(); ok {
		q.metrics.DecQueued(1)
		h.fn()
		q.metrics.IncExecuted()
	}

	q.mu.Lock()
	remaining := len(q.handlers) > 0
	q.mu.Unlock()
	return remaining
}

// RunAll pops and runs handlers until the queue observes empty. Work
// enqueued by an executing handler is drained in the same call.
func (q *ExecQueue) RunAll() {
	for {
		h, ok := q.popHighest()
		if !ok {
			return
		}
		q.metrics.DecQueued(1)
		h.fn()
		q.metrics.IncExecuted()
	}
}

// Len returns the number of handlers currently pending.
func (q *ExecQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.handlers)
}
