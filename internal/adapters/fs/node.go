package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

const (
	// ListerNodeID is the unique identifier for the directory lister Graft node.
	ListerNodeID graft.ID = "adapter.fs.lister"
	// ScannerNodeID is the unique identifier for the line scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
)

func init() {
	graft.Register(graft.Node[ports.DirectoryLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirectoryLister, error) {
			return NewLister(), nil
		},
	})

	graft.Register(graft.Node[ports.LineScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LineScanner, error) {
			return NewScanner(), nil
		},
	})
}
