package ports

import (
	"context"

	"go.trai.ch/dirwatcher/internal/core/domain"
)

// DirectoryLister lists the regular files of a single directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DirectoryLister interface {
	// List returns the base names of the regular files directly inside dir.
	// Sub-directories are never included and never descended into.
	List(ctx context.Context, dir string) (domain.DirectoryListing, error)
}
