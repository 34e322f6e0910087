// Package watcher implements a single poll cycle over the watched directory.
package watcher

import "go.trai.ch/dirwatcher/internal/core/ports"

var _ ports.PollCycle = (*Watcher)(nil)

// Watcher lists the watched directory, reconciles the tracked set against
// it and scans every tracked file for the search text.
type Watcher struct {
	lister   ports.DirectoryLister
	scanner  ports.LineScanner
	reporter ports.Reporter
	logger   ports.Logger
}

// New creates a new Watcher.
func New(
	lister ports.DirectoryLister,
	scanner ports.LineScanner,
	reporter ports.Reporter,
	logger ports.Logger,
) *Watcher {
	return &Watcher{
		lister:   lister,
		scanner:  scanner,
		reporter: reporter,
		logger:   logger,
	}
}
