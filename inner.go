package parking

import (
	"sync/atomic"
	"time"
)

// The states of a parking cell. A cell holding a pending notification is
// notified; a cell whose parker has committed to waiting is parked; otherwise
// the cell is empty. No other transitions exist: unpark moves any state to
// notified, and only the parker moves a cell out of notified or parked.
const (
	empty uint32 = iota
	parked
	notified
)

// inner is the cell shared between one Parker and every Unparker derived from
// it. The atomic state alone carries the protocol; the wake channel exists
// only to let the parker sleep and be woken.
//
// The wake channel holds at most one token. An unpark that observes the
// parked state sends exactly one token, and the park cycle in progress at
// that moment consumes it before returning, so a sender never blocks and no
// token survives into a later cycle to cause a spurious wake.
type inner struct {
	state atomic.Uint32
	wake  chan struct{}
}

func newInner() *inner {
	return &inner{wake: make(chan struct{}, 1)}
}

// tryPark consumes a pending notification without blocking. It reports
// whether a notification was consumed.
func (in *inner) tryPark() bool {
	return in.state.CompareAndSwap(notified, empty)
}

// park blocks until a notification can be consumed, until expired delivers a
// value, or until canceled is closed. A nil channel never delivers. It
// reports whether a notification was consumed.
//
// Only the single goroutine owning the cell's Parker may call park or
// tryPark. park panics if the cell's state shows that a second goroutine has
// broken this contract.
func (in *inner) park(expired <-chan time.Time, canceled <-chan struct{}) bool {
	if in.tryPark() {
		return true
	}

	if !in.state.CompareAndSwap(empty, parked) {
		// A notification raced in after the fast path check. Consume it now so
		// it can't spuriously satisfy a later park.
		if in.state.Swap(empty) != notified {
			panic("parking: multiple goroutines parked on one Parker")
		}
		return true
	}

	woke := false
	select {
	case <-in.wake:
		woke = true
	case <-expired:
	case <-canceled:
	}

	switch in.state.Swap(empty) {
	case notified:
		if !woke {
			// The notifier saw us parked, so its wake token is buffered or in
			// flight. Claim it before it can spuriously satisfy a later park.
			<-in.wake
		}
		return true
	case parked:
		return false
	default:
		panic("parking: inconsistent park state")
	}
}

// unpark delivers a notification to the cell, waking its parker if one is
// waiting. It reports whether this notification was the first since the
// cell's last notification was consumed.
//
// unpark swaps the state unconditionally rather than comparing first: the
// swap is a write with release semantics even when the cell was already
// notified, so everything the caller wrote before unpark is visible to the
// parker once its park returns true.
func (in *inner) unpark() bool {
	switch in.state.Swap(notified) {
	case empty:
		return true
	case notified:
		return false
	case parked:
		// Only one unpark can observe the parked state per park cycle, and the
		// previous cycle's token was consumed before it ended, so this send
		// always finds room in the buffer.
		in.wake <- struct{}{}
		return true
	default:
		panic("parking: inconsistent unpark state")
	}
}
