package appbase_test

import (
	"testing"

	ab "github.com/mixbytes/appbase"
)

func TestExecutorEquality(t *testing.T) {
	q1 := ab.New(ab.Options{})
	q2 := ab.New(ab.Options{})

	if q1.Executor(ab.PriorityHigh) != q1.Executor(ab.PriorityHigh) {
		t.Fatal("executors from same queue and priority compare unequal")
	}
	if q1.Executor(ab.PriorityHigh) == q1.Executor(ab.PriorityLow) {
		t.Fatal("executors with different priorities compare equal")
	}
	if q1.Executor(ab.PriorityHigh) == q2.Executor(ab.PriorityHigh) {
		t.Fatal("executors bound to different queues compare equal")
	}
}

func TestExecutorAccessors(t *testing.T) {
	q := ab.New(ab.Options{})
	e := q.Executor(ab.PriorityMedium)

	if e.Context() != q {
		t.Fatal("Context returned a different queue")
	}
	if e.Priority() != ab.PriorityMedium {
		t.Fatalf("Priority = %d; want %d", e.Priority(), ab.PriorityMedium)
	}
}

func TestSubmissionVerbsAlwaysDefer(t *testing.T) {
	q := ab.New(ab.Options{})
	e := q.Executor(ab.PriorityHigh)

	ran := 0
	submit := []struct {
		name string
		fn   func(func())
	}{
		{"Dispatch", e.Dispatch},
		{"Post", e.Post},
		{"Defer", e.Defer},
	}

	for _, s := range submit {
		s.fn(func() { ran++ })
		if ran != 0 {
			t.Fatalf("%s ran the callback inline; want deferred", s.name)
		}
	}

	if got := q.Len(); got != 3 {
		t.Fatalf("Len = %d; want 3", got)
	}

	q.RunAll()
	if ran != 3 {
		t.Fatalf("executed = %d; want 3", ran)
	}
}

func TestVerbsInterleaveWithAddFIFO(t *testing.T) {
	q := ab.New(ab.Options{})
	e := q.Executor(ab.PriorityMedium)

	var got []int
	e.Post(func() { got = append(got, 1) })
	q.Add(ab.PriorityMedium, func() { got = append(got, 2) })
	e.Defer(func() { got = append(got, 3) })

	q.RunAll()

	if len(got) != 3 {
		t.Fatalf("executed %d handlers; want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("execution order = %v; want [1 2 3]", got)
		}
	}
}

func TestWorkHooksAreNoops(t *testing.T) {
	q := ab.New(ab.Options{})
	e := q.Executor(ab.PriorityLow)

	// Bookkeeping hooks must not enqueue or execute anything.
	e.OnWorkStarted()
	e.OnWorkFinished()

	if got := q.Len(); got != 0 {
		t.Fatalf("Len = %d; want 0", got)
	}
}

func TestWrapFunnelsThroughQueue(t *testing.T) {
	q := ab.New(ab.Options{})

	ran := false
	h := q.Wrap(ab.PriorityHigh, func() { ran = true })

	if h.Executor() != q.Executor(ab.PriorityHigh) {
		t.Fatal("wrapped handler bound to unexpected executor")
	}

	// Simulate a third-party subsystem completing: it invokes the handler,
	// which must enqueue the callback rather than run it.
	complete := h.Invoke
	complete()

	if ran {
		t.Fatal("wrapped callback ran inline; want deferred")
	}
	if got := q.Len(); got != 1 {
		t.Fatalf("Len = %d; want 1", got)
	}

	q.RunAll()
	if !ran {
		t.Fatal("wrapped callback did not run after drain")
	}
}

func TestWrapRespectsPriorityOrdering(t *testing.T) {
	q := ab.New(ab.Options{})

	var got []string
	low := q.Wrap(ab.PriorityLow, func() { got = append(got, "low") })
	high := q.Wrap(ab.PriorityHigh, func() { got = append(got, "high") })

	low.Invoke()
	high.Invoke()
	q.RunAll()

	if len(got) != 2 || got[0] != "high" || got[1] != "low" {
		t.Fatalf("execution order = %v; want [high low]", got)
	}
}
