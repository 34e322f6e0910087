// Package config provides the configuration loader for dirwatcher.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the config file read when --config is not given.
	DefaultFilename = domain.DefaultConfigFilename
	// SupportedVersion is the only schema version understood by the loader.
	SupportedVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the file at path and overlays every value it sets on base.
// An empty file leaves base unchanged.
func (l *Loader) Load(path string, base domain.Settings) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
		if errors.Is(err, os.ErrNotExist) {
			return base, errors.Join(domain.ErrConfigNotFound, wrapped)
		}
		return base, wrapped
	}

	var wf Watchfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil && !errors.Is(err, io.EOF) {
		return base, errors.Join(
			domain.ErrInvalidConfig,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path),
		)
	}

	settings, err := apply(wf, base)
	if err != nil {
		return base, errors.Join(domain.ErrInvalidConfig, zerr.With(err, "path", path))
	}

	l.logger.Debug("loaded config file", "path", path)
	return settings, nil
}

func apply(wf Watchfile, base domain.Settings) (domain.Settings, error) {
	if wf.Version != "" && wf.Version != SupportedVersion {
		return base, zerr.With(zerr.New("unsupported config version"), "version", wf.Version)
	}

	s := base
	if wf.Watch.Directory != "" {
		s.Watch.WatchDirectory = wf.Watch.Directory
	}
	if wf.Watch.SearchText != "" {
		s.Watch.SearchText = wf.Watch.SearchText
	}
	if wf.Watch.Extension != nil {
		s.Watch.FileExtension = domain.NewExtensionFilter(*wf.Watch.Extension)
	}
	if wf.Watch.PollInterval.Set {
		s.Watch.PollInterval = wf.Watch.PollInterval.Duration
	}

	if wf.Log.Level != "" {
		if !isKnownLevel(wf.Log.Level) {
			return base, zerr.With(zerr.New("unknown log level"), "level", wf.Log.Level)
		}
		s.LogLevel = domain.ParseLogLevel(wf.Log.Level)
	}
	if wf.Log.JSON != nil {
		s.JSONLogs = *wf.Log.JSON
	}

	return s, nil
}

func isKnownLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
