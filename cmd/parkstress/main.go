// Command parkstress hammers a single parker with concurrent unparkers and
// reports timing and accounting statistics, as a live check of the parking
// package's guarantees under real scheduler contention.
package main

import (
	"time"

	"github.com/spf13/pflag"

	"go.alexhamlin.co/parking/internal/log"
	"go.alexhamlin.co/parking/internal/stress"
)

var (
	cycles  = pflag.Int("cycles", 10_000, "number of park cycles to drive")
	workers = pflag.Int("workers", 4, "concurrent unparker goroutines")
	timeout = pflag.Duration("timeout", time.Millisecond, "per-cycle park timeout")
	window  = pflag.Int("window", 1024, "wake latency samples to retain")
	verbose = pflag.BoolP("verbose", "v", false, "print progress while running")
)

func main() {
	pflag.Parse()
	log.SetVerbose(*verbose)

	cfg := stress.Config{
		Cycles:  *cycles,
		Workers: *workers,
		Timeout: *timeout,
		Window:  *window,
	}

	start := time.Now()
	report := stress.Run(cfg)
	elapsed := time.Since(start)

	log.Printf("ran %d cycles in %v across %d workers", report.Cycles, elapsed.Round(time.Millisecond), cfg.Workers)
	log.Printf("notified %d, timed out %d, drained %d", report.Notified, report.TimedOut, report.Drained)
	log.Printf("deliveries: %d first, %d coalesced, %d distinct notifiers",
		report.FirstDeliveries, report.CoalescedDeliveries, report.DistinctNotifiers)
	if report.Notified > 0 {
		log.Printf("wake latency: mean %v, max %v", report.MeanWakeLatency, report.MaxWakeLatency)
	}
}
