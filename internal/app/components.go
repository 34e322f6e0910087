package app

import "go.trai.ch/dirwatcher/internal/core/ports"

// Components holds everything main needs after dependency resolution.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
