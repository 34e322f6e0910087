package watcher_test

import (
	"io"
	"sync"

	"go.trai.ch/dirwatcher/internal/core/domain"
)

// lookup finds name in set by walking it.
func lookup(set *domain.TrackedSet, name string) (domain.TrackedFile, bool) {
	for tf := range set.Walk() {
		if tf.Name == name {
			return tf, true
		}
	}
	return domain.TrackedFile{}, false
}

func isTracked(set *domain.TrackedSet, name string) bool {
	_, ok := lookup(set, name)
	return ok
}

// recordingReporter keeps every event it receives, in order.
type recordingReporter struct {
	mu        sync.Mutex
	events    []domain.FileEvent
	matches   []domain.MatchEvent
	snapshots []map[string]int
	order     []string
}

func (r *recordingReporter) FileEvent(ev domain.FileEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.order = append(r.order, string(ev.Kind)+":"+ev.File)
}

func (r *recordingReporter) Match(ev domain.MatchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, ev)
}

func (r *recordingReporter) Snapshot(files map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, files)
	r.order = append(r.order, "snapshot")
}

func (r *recordingReporter) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events, r.matches, r.snapshots, r.order = nil, nil, nil, nil
}

// fakeVertex records whether the cycle marked itself as cached.
type fakeVertex struct {
	cached bool
}

func (v *fakeVertex) Stdout() io.Writer                { return io.Discard }
func (v *fakeVertex) Stderr() io.Writer                { return io.Discard }
func (v *fakeVertex) Log(_ domain.LogLevel, _ string) {}
func (v *fakeVertex) Complete(_ error)                 {}
func (v *fakeVertex) Cached()                          { v.cached = true }
