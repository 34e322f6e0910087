package domain

import "go.trai.ch/zerr"

var (
	// ErrListDirectory is returned when the watched directory cannot be listed.
	// It is recoverable: the cycle is skipped and state is left unchanged.
	ErrListDirectory = zerr.New("failed to list watch directory")

	// ErrReadFile is returned when a tracked file cannot be opened or read.
	// It is recoverable: only that file's scan is abandoned for the cycle.
	ErrReadFile = zerr.New("failed to read tracked file")

	// ErrFatalCycle is returned when a poll cycle fails in an unexpected way.
	// It stops the scheduler.
	ErrFatalCycle = zerr.New("poll cycle failed")

	// ErrFileNotTracked is returned when updating a file that is not in the tracked set.
	ErrFileNotTracked = zerr.New("file is not tracked")

	// ErrInvalidConfig is returned when the watch configuration is invalid.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingSearchText is returned when no search text is configured.
	ErrMissingSearchText = zerr.New("search text is required")

	// ErrMissingWatchDirectory is returned when no watch directory is configured.
	ErrMissingWatchDirectory = zerr.New("watch directory is required")

	// ErrInvalidPollInterval is returned when the poll interval is not positive.
	ErrInvalidPollInterval = zerr.New("poll interval must be positive")

	// ErrConfigNotFound is returned when a config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")
)
