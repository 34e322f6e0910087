package ports

import "go.trai.ch/dirwatcher/internal/core/domain"

// LogConfigurer adjusts log output once the run configuration is known.
//
//go:generate go run go.uber.org/mock/mockgen -source=log_config.go -destination=mocks/mock_log_config.go -package=mocks
type LogConfigurer interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
}
