// Package scheduler drives poll cycles at a fixed interval until asked to stop.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

// State is the lifecycle state of a Scheduler.
type State string

const (
	// StateIdle indicates Run has not been called yet.
	StateIdle State = "Idle"
	// StateRunning indicates the poll loop is active.
	StateRunning State = "Running"
	// StateStopped indicates the poll loop has exited.
	StateStopped State = "Stopped"
)

const (
	rule = "------------------------------"

	// CancelReason is reported when the run context ends before a stop request.
	CancelReason = "context cancellation"
)

// Scheduler repeatedly runs a poll cycle against the tracked set it owns.
type Scheduler struct {
	cycle     ports.PollCycle
	clock     ports.Clock
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	state  State
	cycles int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	cycle ports.PollCycle,
	clock ports.Clock,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		cycle:     cycle,
		clock:     clock,
		telemetry: telemetry,
		logger:    logger,
		state:     StateIdle,
	}
}

// Run polls until stop is requested, ctx ends or a cycle fails fatally.
//
// The stop flag is only checked between cycles; a running cycle and the
// following sleep always complete. The sleep also follows a fatal cycle,
// after which Run returns that cycle's error. A clean stop returns nil.
func (s *Scheduler) Run(ctx context.Context, cfg domain.WatchConfig, stop *StopSignal) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := s.clock.Now()
	s.setState(StateRunning)
	s.logger.Info(banner("dirwatcher started"))

	set := domain.NewTrackedSet()
	cycleCtx := context.WithoutCancel(ctx)

	var fatal error
	for {
		if ctx.Err() != nil {
			stop.Request(CancelReason)
		}
		if stop.Requested() {
			break
		}

		n := s.nextCycle()
		vctx, vertex := s.telemetry.Record(cycleCtx, fmt.Sprintf("poll cycle #%d", n))
		err := s.cycle.Cycle(vctx, set, cfg)
		vertex.Complete(err)
		if err != nil {
			s.logger.Error(err)
			fatal = err
		}

		s.clock.Sleep(cfg.PollInterval)

		if fatal != nil {
			break
		}
	}

	s.setState(StateStopped)
	elapsed := s.clock.Now().Sub(start)
	s.logger.Info(banner("dirwatcher stopped", "running time "+domain.FormatRunTime(elapsed)))

	return fatal
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Cycles returns the number of poll cycles started so far.
func (s *Scheduler) Cycles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycles
}

func (s *Scheduler) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Scheduler) nextCycle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycles++
	return s.cycles
}

// banner frames lines between two horizontal rules.
func banner(lines ...string) string {
	return "\n" + rule + "\n " + strings.Join(lines, "\n ") + "\n" + rule
}
