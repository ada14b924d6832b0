// Package stress drives randomized park/unpark workloads against a single
// parker, checking the primitive's coalescing and no-leaked-state guarantees
// as it runs.
package stress

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"
	"github.com/samber/lo"

	"go.alexhamlin.co/parking"
	"go.alexhamlin.co/parking/internal/log"
)

// Config controls a stress run.
type Config struct {
	// Cycles is the number of timed park calls the run will make.
	Cycles int
	// Workers is the number of goroutines delivering notifications through
	// their own copies of the parker's Unparker.
	Workers int
	// Timeout bounds each park call. Workers pause for random fractions of
	// roughly twice this duration between deliveries, so a run sees a mix of
	// fast-path consumptions, blocking wakeups, and expired waits.
	Timeout time.Duration
	// Window is the number of recent wake latency samples to retain for the
	// report's latency figures.
	Window int
}

func (c Config) withDefaults() Config {
	if c.Cycles <= 0 {
		c.Cycles = 1000
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = time.Millisecond
	}
	if c.Window <= 0 {
		c.Window = 1024
	}
	return c
}

// Report summarizes a stress run.
type Report struct {
	// Cycles is the number of park calls made, per the run's Config.
	Cycles int
	// Notified counts park calls that consumed a notification; TimedOut
	// counts those whose wait expired first. The two always sum to Cycles.
	Notified, TimedOut int
	// Drained is 1 if a final notification landed after the last cycle's
	// timeout and had to be consumed by a closing poll, 0 otherwise.
	Drained int
	// FirstDeliveries counts unpark calls that delivered the first
	// notification of a cycle; CoalescedDeliveries counts those that found a
	// notification already pending.
	FirstDeliveries, CoalescedDeliveries uint64
	// DistinctNotifiers is the number of workers that delivered at least one
	// first notification.
	DistinctNotifiers int
	// MaxWakeLatency and MeanWakeLatency describe the time from entering a
	// park call to returning with a notification, over the most recent Window
	// samples. Both are zero if no cycle was notified.
	MaxWakeLatency, MeanWakeLatency time.Duration
}

// Run drives cfg.Cycles timed park calls on one parker while cfg.Workers
// goroutines race to notify it, then reports what happened. It panics if the
// primitive misbehaves: if notifications fail to coalesce, or if the number
// of notifications delivered diverges from the number consumed.
func Run(cfg Config) Report {
	cfg = cfg.withDefaults()
	p, u := parking.NewPair()

	var (
		stop      = make(chan struct{})
		wg        sync.WaitGroup
		firsts    atomic.Uint64
		coalesced atomic.Uint64
		notifiers = mapset.NewSet[int]()
	)
	for id := range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				if u.Unpark() {
					firsts.Add(1)
					notifiers.Add(id)
				} else {
					coalesced.Add(1)
				}

				pause := time.Duration(rand.Int64N(int64(2 * cfg.Timeout)))
				select {
				case <-stop:
					return
				case <-time.After(pause):
				}
			}
		}()
	}

	var (
		window   deque.Deque[time.Duration]
		notified int
		timedOut int
	)
	for cycle := range cfg.Cycles {
		start := time.Now()
		if p.ParkTimeout(cfg.Timeout) {
			notified++
			window.PushBack(time.Since(start))
			if window.Len() > cfg.Window {
				window.PopFront()
			}
		} else {
			timedOut++
		}
		if (cycle+1)%1000 == 0 {
			log.Verbosef("stress: %d/%d cycles, %d notified, %d timed out",
				cycle+1, cfg.Cycles, notified, timedOut)
		}
	}

	close(stop)
	wg.Wait()

	// With the workers gone, at most one undelivered notification remains.
	drained := 0
	if p.ParkTimeout(0) {
		drained++
	}
	if p.ParkTimeout(0) {
		panic("stress: notifications failed to coalesce")
	}
	if firsts.Load() != uint64(notified+drained) {
		panic("stress: delivered and consumed notification counts diverge")
	}

	samples := make([]time.Duration, window.Len())
	for i := range samples {
		samples[i] = window.At(i)
	}

	report := Report{
		Cycles:              cfg.Cycles,
		Notified:            notified,
		TimedOut:            timedOut,
		Drained:             drained,
		FirstDeliveries:     firsts.Load(),
		CoalescedDeliveries: coalesced.Load(),
		DistinctNotifiers:   notifiers.Cardinality(),
	}
	if len(samples) > 0 {
		report.MaxWakeLatency = lo.Max(samples)
		report.MeanWakeLatency = lo.Sum(samples) / time.Duration(len(samples))
	}
	return report
}
