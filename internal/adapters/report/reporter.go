// Package report turns watcher events into log lines.
package report

import (
	"fmt"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

var _ ports.Reporter = (*LogReporter)(nil)

// LogReporter writes every event through a ports.Logger.
type LogReporter struct {
	logger ports.Logger
}

// New creates a LogReporter.
func New(logger ports.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// FileEvent logs a tracked-set change at info level.
func (r *LogReporter) FileEvent(ev domain.FileEvent) {
	switch ev.Kind {
	case domain.FileAdded:
		r.logger.Info("New File detected : " + ev.File)
	case domain.FileRemoved:
		r.logger.Info("Deleted File detected : " + ev.File)
	default:
		r.logger.Debug("unknown file event", "kind", string(ev.Kind), "file", ev.File)
	}
}

// Match logs a search text hit at info level.
func (r *LogReporter) Match(ev domain.MatchEvent) {
	r.logger.Info(fmt.Sprintf("Magic text found in file %s at line number %d", ev.File, ev.Line))
}

// Snapshot logs the tracked set at debug level.
func (r *LogReporter) Snapshot(files map[string]int) {
	r.logger.Debug("tracked files", "files", files)
}
