package parking_test

import (
	"fmt"
	"time"

	"go.alexhamlin.co/parking"
)

func Example() {
	p, u := parking.NewPair()

	// Notify the parker before it parks.
	fmt.Println(u.Unpark())

	// Wakes up immediately because a notification is pending.
	p.Park()

	go func() {
		time.Sleep(500 * time.Millisecond)
		u.Unpark()
	}()

	// Blocks until the goroutine above delivers its notification.
	p.Park()

	// Output:
	// true
}

func ExampleParker_ParkTimeout() {
	p := parking.NewParker()

	// No notification ever arrives, so the wait gives up.
	fmt.Println(p.ParkTimeout(10 * time.Millisecond))

	// Output:
	// false
}

func ExampleUnparker() {
	p, u := parking.NewPair()

	// Unparkers are plain values: copies share the same parker, and any
	// goroutine may use one.
	clone := u
	go clone.Unpark()

	p.Park()
	fmt.Println("woken")

	// Output:
	// woken
}
