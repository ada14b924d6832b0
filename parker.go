package parking

import (
	"context"
	"time"
)

// Parker suspends the goroutine that owns it until an associated [Unparker]
// delivers a notification. Each notification satisfies exactly one wait, and
// notifications never accumulate: delivering several before the next wait is
// the same as delivering one.
//
// A Parker admits a single waiter. Only the one goroutine that owns a Parker
// may call its Park methods, though it need not be the goroutine that created
// it. Parking the same Parker from two goroutines at once is a contract
// violation that panics when detected rather than blocking or misbehaving
// silently. The notifying side has no such restriction; see [Unparker].
//
// The zero value of a Parker is not valid. Use [NewParker] or [NewPair].
type Parker struct {
	unparker Unparker
}

// NewParker returns a Parker with no pending notification. Use
// [Parker.Unparker] to obtain the handle that wakes it.
func NewParker() *Parker {
	return &Parker{unparker: Unparker{inner: newInner()}}
}

// NewPair returns a Parker and an Unparker sharing a fresh state cell,
// independent of any other pair.
func NewPair() (*Parker, Unparker) {
	p := NewParker()
	return p, p.unparker
}

// Park blocks the calling goroutine until a notification is delivered, then
// consumes it. If a notification is already pending, Park consumes it and
// returns without blocking.
func (p *Parker) Park() {
	p.unparker.inner.park(nil, nil)
}

// ParkTimeout blocks the calling goroutine for at most d, returning early if
// a notification is delivered. It reports whether a notification was
// consumed.
//
// A zero or negative d makes ParkTimeout a non-blocking poll: it consumes a
// pending notification if there is one and returns immediately either way.
func (p *Parker) ParkTimeout(d time.Duration) bool {
	if d <= 0 {
		return p.unparker.inner.tryPark()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	return p.unparker.inner.park(timer.C, nil)
}

// ParkDeadline blocks the calling goroutine until the wall-clock instant t,
// returning early if a notification is delivered. It reports whether a
// notification was consumed. A deadline at or before the current time makes
// ParkDeadline a non-blocking poll, like a zero [Parker.ParkTimeout].
func (p *Parker) ParkDeadline(t time.Time) bool {
	return p.ParkTimeout(time.Until(t))
}

// ParkContext blocks the calling goroutine until a notification is delivered
// or ctx is done, whichever comes first. It reports whether a notification
// was consumed; when ctx is done first it returns false, leaving no pending
// state behind. A pending notification satisfies ParkContext even if ctx is
// already done.
func (p *Parker) ParkContext(ctx context.Context) bool {
	return p.unparker.inner.park(nil, ctx.Done())
}

// Unpark delivers a notification to p, as if through the handle returned by
// [Parker.Unparker]. See [Unparker.Unpark].
func (p *Parker) Unpark() bool {
	return p.unparker.Unpark()
}

// Unparker returns a handle that delivers notifications to p. The handle may
// be copied and shared freely, and remains usable regardless of what happens
// to p.
func (p *Parker) Unparker() Unparker {
	return p.unparker
}

func (p *Parker) String() string {
	return "Parker{..}"
}
