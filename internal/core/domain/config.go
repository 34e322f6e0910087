package domain

import (
	"errors"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultPollInterval is the pause between poll cycles when none is configured.
	DefaultPollInterval = time.Second
	// DefaultConfigFilename is the config file looked up in the working directory.
	DefaultConfigFilename = "dirwatcher.yaml"
)

// WatchConfig holds the parameters of a watch session.
type WatchConfig struct {
	// WatchDirectory is the directory to list every cycle.
	WatchDirectory string
	// SearchText is the substring looked for in tracked files.
	SearchText string
	// FileExtension selects which files are tracked, e.g. ".log".
	// When unset no file is tracked.
	FileExtension ExtensionFilter
	// PollInterval is the pause between cycles.
	PollInterval time.Duration
}

// Validate checks that all required settings are present.
func (c WatchConfig) Validate() error {
	var errs error
	if c.SearchText == "" {
		errs = errors.Join(errs, ErrMissingSearchText)
	}
	if c.WatchDirectory == "" {
		errs = errors.Join(errs, ErrMissingWatchDirectory)
	}
	if c.PollInterval <= 0 {
		errs = errors.Join(errs, zerr.With(zerr.Wrap(ErrInvalidPollInterval, "bad poll interval"), "poll_interval", c.PollInterval.String()))
	}
	if errs != nil {
		return errors.Join(ErrInvalidConfig, errs)
	}
	return nil
}

// Settings is the fully resolved configuration for a run.
type Settings struct {
	Watch    WatchConfig
	LogLevel LogLevel
	JSONLogs bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Watch: WatchConfig{
			PollInterval: DefaultPollInterval,
		},
		LogLevel: LogLevelInfo,
	}
}
