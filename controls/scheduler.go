package controls

import "time"

// Timer is a pending deferred callback
type Timer interface {
	// Stop cancels the callback, reporting whether it was still pending
	Stop() bool
}

// Scheduler defers callbacks. Implementations must run f on the goroutine
// that drives the Surface.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
