package watcher

import (
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

// Reconcile brings set in line with listing.
//
// Listed names accepted by ext that are not tracked yet are added with a
// zero watermark. Tracked names missing from listing are removed whatever
// their extension. Events are sent to sink as they happen, additions first,
// each group in name order, with a snapshot of the set between the two
// groups. sink may be nil. The applied events are returned in the same order.
func Reconcile(
	set *domain.TrackedSet,
	listing domain.DirectoryListing,
	ext domain.ExtensionFilter,
	sink ports.Reporter,
) []domain.FileEvent {
	var events []domain.FileEvent

	emit := func(ev domain.FileEvent) {
		events = append(events, ev)
		if sink != nil {
			sink.FileEvent(ev)
		}
	}

	for _, name := range listing.Names() {
		if !ext.Matches(name) {
			continue
		}
		if set.Add(name) {
			emit(domain.FileEvent{Kind: domain.FileAdded, File: name})
		}
	}

	if sink != nil {
		sink.Snapshot(set.Snapshot())
	}

	for _, name := range set.Names() {
		if listing.Contains(name) {
			continue
		}
		if set.Remove(name) {
			emit(domain.FileEvent{Kind: domain.FileRemoved, File: name})
		}
	}

	return events
}
