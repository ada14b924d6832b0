/*
Package parking provides a low-level notification primitive for suspending and
waking a single goroutine.

A [Parker] owns the blocking side of the primitive: the goroutine holding it
may suspend itself until some other goroutine delivers a notification through
an [Unparker] sharing the same state. Notifications coalesce rather than
count: any number of deliveries between two waits collapse into one, and a
delivery that arrives before the wait satisfies it immediately without
blocking or allocating.

Parking is a building block for schedulers, pollers, and channel-free worker
loops, not an end-user synchronization tool. Most programs want a channel,
[sync.Cond], or [sync.WaitGroup] instead.
*/
package parking
