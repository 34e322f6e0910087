package ports

import "go.trai.ch/dirwatcher/internal/core/domain"

// Reporter is the outbound sink for core events.
// The core produces events; formatting and routing belong to the implementation.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// FileEvent reports that a file was added to or removed from the tracked set.
	FileEvent(ev domain.FileEvent)
	// Match reports a search text hit.
	Match(ev domain.MatchEvent)
	// Snapshot reports the current tracked set as name -> watermark.
	Snapshot(files map[string]int)
}
