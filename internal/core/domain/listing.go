package domain

import (
	"maps"
	"slices"
)

// DirectoryListing is the set of regular file names present in the watched
// directory at one instant.
type DirectoryListing map[string]struct{}

// NewDirectoryListing builds a listing from the given names.
func NewDirectoryListing(names ...string) DirectoryListing {
	l := make(DirectoryListing, len(names))
	for _, n := range names {
		l[n] = struct{}{}
	}
	return l
}

// Contains reports whether name was listed.
func (l DirectoryListing) Contains(name string) bool {
	_, ok := l[name]
	return ok
}

// Names returns the listed names in lexical order.
func (l DirectoryListing) Names() []string {
	return slices.Sorted(maps.Keys(l))
}
