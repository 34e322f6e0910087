package scheduler

import (
	"sync/atomic"

	"go.trai.ch/dirwatcher/internal/core/ports"
)

// StopSignal is a one-way flag asking the scheduler to stop at the next
// loop boundary. It is safe for concurrent use.
type StopSignal struct {
	requested atomic.Bool
	logger    ports.Logger
}

// NewStopSignal creates an unset StopSignal.
func NewStopSignal(logger ports.Logger) *StopSignal {
	return &StopSignal{logger: logger}
}

// Request sets the flag. The first request logs "Received <reason>";
// later requests are ignored.
func (s *StopSignal) Request(reason string) {
	if s.requested.CompareAndSwap(false, true) {
		s.logger.Warn("Received " + reason)
	}
}

// Requested reports whether a stop has been requested.
func (s *StopSignal) Requested() bool {
	return s.requested.Load()
}
