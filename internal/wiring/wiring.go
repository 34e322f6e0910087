// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dirwatcher/internal/adapters/clock"
	_ "go.trai.ch/dirwatcher/internal/adapters/config"
	_ "go.trai.ch/dirwatcher/internal/adapters/fs"
	_ "go.trai.ch/dirwatcher/internal/adapters/logger"
	_ "go.trai.ch/dirwatcher/internal/adapters/report"
	_ "go.trai.ch/dirwatcher/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/dirwatcher/internal/app"
	_ "go.trai.ch/dirwatcher/internal/engine/scheduler"
	_ "go.trai.ch/dirwatcher/internal/engine/watcher"
)
