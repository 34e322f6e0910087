package ports

import "go.trai.ch/dirwatcher/internal/core/domain"

// ConfigLoader defines the interface for loading watcher settings from a file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the file at path and overlays its values on base.
	// It returns an error wrapping domain.ErrConfigNotFound if the file does not exist.
	Load(path string, base domain.Settings) (domain.Settings, error)
}
