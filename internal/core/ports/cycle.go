package ports

import (
	"context"

	"go.trai.ch/dirwatcher/internal/core/domain"
)

// PollCycle performs one list-reconcile-scan pass over the watched directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=cycle.go -destination=mocks/mock_cycle.go -package=mocks
type PollCycle interface {
	// Cycle mutates set in place. Recoverable failures are reported and
	// swallowed; a returned error is fatal and wraps domain.ErrFatalCycle.
	Cycle(ctx context.Context, set *domain.TrackedSet, cfg domain.WatchConfig) error
}
