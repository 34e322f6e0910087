// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"time"

	"go.trai.ch/dirwatcher/internal/core/ports"
)

var _ ports.Clock = System{}

// System reads and waits on the real clock.
type System struct{}

// New creates a System clock.
func New() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine for d.
func (System) Sleep(d time.Duration) {
	time.Sleep(d)
}
