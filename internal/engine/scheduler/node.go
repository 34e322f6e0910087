package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dirwatcher/internal/adapters/clock"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/dirwatcher/internal/engine/watcher"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			watcher.NodeID,
			clock.NodeID,
			progrock.NodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			cycle, err := graft.Dep[ports.PollCycle](ctx)
			if err != nil {
				return nil, err
			}

			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(cycle, clk, tel, log), nil
		},
	})
}
