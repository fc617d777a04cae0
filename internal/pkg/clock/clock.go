// Package clock provides time and scheduling utilities
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/questline/internal/pkg/clock Clock,Scheduler

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Timer is the cancellation handle of a scheduled continuation
type Timer interface {
	// Stop cancels the continuation. It returns false if it already ran or
	// was stopped.
	Stop() bool
}

// Scheduler runs continuations after a delay without blocking the caller
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real implements Clock and Scheduler using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on its own goroutine once d has elapsed
func (c *Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// New returns a new real clock
func New() *Real {
	return &Real{}
}
