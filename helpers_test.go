package parking

import (
	"runtime"
	"testing"
	"time"
)

const timeout = 2 * time.Second

// promise runs fn in a new goroutine and returns a channel that closes when
// it finishes.
func promise(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() { defer close(done); fn() }()
	return done
}

// assertCompletesWithin fails the test if fn does not return within a
// reasonable amount of time, to catch missed wakeups that would otherwise
// hang the test until its own deadline.
func assertCompletesWithin(t *testing.T, limit time.Duration, fn func()) {
	t.Helper()
	select {
	case <-promise(fn):
	case <-time.After(limit):
		t.Fatalf("did not complete within %v", limit)
	}
}

// assertParkBlocked fails the test if a parker can complete a Park call
// without a new notification. It is best-effort; see [forceRuntimeProgress]
// for details. It delivers a notification of its own before returning, so the
// spawned goroutine does not outlive the test.
func assertParkBlocked(t *testing.T, p *Parker) {
	t.Helper()

	done := promise(p.Park)
	forceRuntimeProgress()

	select {
	case <-done:
		t.Error("park completed without a notification")
	default:
		p.Unpark()
		assertEventuallyUnblocks(t, done)
	}
}

// assertCellEmpty fails the test if a parker's state cell holds a leftover
// notification, a leftover parked marker, or a buffered wake token.
func assertCellEmpty(t *testing.T, p *Parker) {
	t.Helper()
	in := p.unparker.inner
	if state := in.state.Load(); state != empty {
		t.Errorf("cell state is %d, want %d (empty)", state, empty)
	}
	if n := len(in.wake); n != 0 {
		t.Errorf("cell has %d buffered wake tokens, want 0", n)
	}
}

// forceRuntimeProgress makes a best-effort attempt to force the Go runtime to
// make progress on all other goroutines in the system, ideally to the point
// at which they will next block if not preempted. It works best if no other
// goroutines are CPU-intensive or change GOMAXPROCS.
//
// Under the experimental synctest package, synctest.Wait guarantees this
// behavior for the goroutines within a bubble.
func forceRuntimeProgress() {
	gomaxprocs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(gomaxprocs)
	for range runtime.NumGoroutine() {
		runtime.Gosched()
	}
}
