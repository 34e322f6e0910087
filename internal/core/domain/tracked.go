// Package domain contains the core domain models for the directory watcher.
package domain

import (
	"iter"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// TrackedFile is the per-file state kept between poll cycles.
type TrackedFile struct {
	// Name is the base name of the file inside the watched directory.
	Name string
	// Watermark is the 1-based index of the first line not yet inspected.
	// A freshly tracked file starts at 0.
	Watermark int
	// Digest is the content fingerprint taken by the last completed scan.
	Digest uint64
}

// TrackedSet maps file names to their tracking state.
// Entries are created and deleted only through Add and Remove.
type TrackedSet struct {
	files map[string]TrackedFile
}

// NewTrackedSet creates an empty TrackedSet.
func NewTrackedSet() *TrackedSet {
	return &TrackedSet{
		files: make(map[string]TrackedFile),
	}
}

// Add starts tracking name with a zero watermark.
// It returns false if name is already tracked.
func (s *TrackedSet) Add(name string) bool {
	if _, exists := s.files[name]; exists {
		return false
	}
	s.files[name] = TrackedFile{Name: name}
	return true
}

// Remove stops tracking name. It returns false if name was not tracked.
func (s *TrackedSet) Remove(name string) bool {
	if _, exists := s.files[name]; !exists {
		return false
	}
	delete(s.files, name)
	return true
}

// Update records the outcome of a completed scan.
// Updating an untracked name is an error; it never creates an entry.
func (s *TrackedSet) Update(name string, watermark int, digest uint64) error {
	f, exists := s.files[name]
	if !exists {
		return zerr.With(zerr.Wrap(ErrFileNotTracked, "cannot update scan state"), "file", name)
	}
	f.Watermark = watermark
	f.Digest = digest
	s.files[name] = f
	return nil
}

// Len returns the number of tracked files.
func (s *TrackedSet) Len() int {
	return len(s.files)
}

// Names returns the tracked names in lexical order.
func (s *TrackedSet) Names() []string {
	return slices.Sorted(maps.Keys(s.files))
}

// Walk yields tracked files in lexical name order.
// The yielded values are copies; use Update to change them. Names removed
// during the walk are skipped.
func (s *TrackedSet) Walk() iter.Seq[TrackedFile] {
	return func(yield func(TrackedFile) bool) {
		for _, name := range s.Names() {
			f, ok := s.files[name]
			if !ok {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Snapshot returns a copy of name -> watermark for reporting.
func (s *TrackedSet) Snapshot() map[string]int {
	snap := make(map[string]int, len(s.files))
	for name, f := range s.files {
		snap[name] = f.Watermark
	}
	return snap
}
