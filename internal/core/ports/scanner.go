package ports

import (
	"context"

	"go.trai.ch/dirwatcher/internal/core/domain"
)

// LineScanner reads a file from its first line and reports new matches.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type LineScanner interface {
	// Scan reads path top to bottom. onMatch is called, in file order, for every
	// line whose 1-based index is >= watermark and that contains text.
	//
	// The returned result is only meaningful when err is nil; on error the
	// caller must keep its previous watermark.
	Scan(ctx context.Context, path string, watermark int, text string, onMatch func(line int)) (domain.ScanResult, error)
}
