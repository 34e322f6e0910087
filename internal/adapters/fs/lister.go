// Package fs provides file system adapters for listing and scanning files.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectoryLister = (*Lister)(nil)

// Lister lists the regular files of a directory without descending into it.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List returns the names of the regular files directly inside dir.
// Symlinks are followed; broken links and non-regular files are skipped.
func (l *Lister) List(ctx context.Context, dir string) (domain.DirectoryListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(domain.ErrListDirectory, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(
			domain.ErrListDirectory,
			zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir),
		)
	}

	listing := make(domain.DirectoryListing, len(entries))
	for name := range l.regularFiles(dir, entries) {
		listing[name] = struct{}{}
	}
	return listing, nil
}

// regularFiles yields the names of entries that resolve to regular files.
func (l *Lister) regularFiles(dir string, entries []iofs.DirEntry) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range entries {
			if !l.isRegular(dir, entry) {
				continue
			}
			if !yield(entry.Name()) {
				return
			}
		}
	}
}

func (l *Lister) isRegular(dir string, entry iofs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
