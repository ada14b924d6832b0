//go:build goexperiment.synctest

package parking

import "testing"

func assertEventuallyUnblocks(t *testing.T, done <-chan struct{}) {
	// synctest.Run only returns after all bubbled goroutines exit, so a test
	// that leaks a durably blocked goroutine panics on its own.
}
