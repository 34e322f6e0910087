package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dirwatcher/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/adapters/report" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dirwatcher/internal/core/ports"
)

// NodeID is the unique identifier for the watcher Graft node.
const NodeID graft.ID = "engine.watcher"

func init() {
	graft.Register(graft.Node[ports.PollCycle]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ListerNodeID,
			fs.ScannerNodeID,
			report.NodeID,
			logger.PortNodeID,
		},
		Run: func(ctx context.Context) (ports.PollCycle, error) {
			lister, err := graft.Dep[ports.DirectoryLister](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.LineScanner](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(lister, scanner, reporter, log), nil
		},
	})
}
