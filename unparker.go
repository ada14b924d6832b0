package parking

// Unparker delivers notifications to the [Parker] it was obtained from.
//
// Unlike a Parker, an Unparker is a plain value: copying it is a cheap clone
// that shares the same state cell, and any number of goroutines may call
// Unpark on any number of copies concurrently. The number of copies in
// existence has no effect on the primitive's behavior.
//
// The zero value of an Unparker is not associated with any Parker and must
// not be used.
type Unparker struct {
	inner *inner
}

// Unpark delivers a notification, waking the associated [Parker] if it is
// currently parked. It reports whether this call delivered the first pending
// notification since the last one was consumed; concurrent calls racing for
// the same cycle see exactly one true result among them.
func (u Unparker) Unpark() bool {
	return u.inner.unpark()
}

func (u Unparker) String() string {
	return "Unparker{..}"
}
