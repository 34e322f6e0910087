// Package app implements the application layer for dirwatcher.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/dirwatcher/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// NoExtensionWarning is logged when a session starts without a file extension.
const NoExtensionWarning = "no file extension configured, no files will be tracked"

// SignalListener blocks until it has requested stop or ctx is done.
type SignalListener func(ctx context.Context, stop *scheduler.StopSignal)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	telemetry    ports.Telemetry
	logger       ports.Logger
	logConfig    ports.LogConfigurer
	listen       SignalListener
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	telemetry ports.Telemetry,
	log ports.Logger,
	logConfig ports.LogConfigurer,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		telemetry:    telemetry,
		logger:       log,
		logConfig:    logConfig,
		listen: func(ctx context.Context, stop *scheduler.StopSignal) {
			scheduler.ListenForSignals(ctx, stop)
		},
	}
}

// WithSignalListener replaces the OS signal listener.
// This is primarily used for testing to deliver stop requests directly.
func (a *App) WithSignalListener(l SignalListener) *App {
	a.listen = l
	return a
}

// WatchOptions carries the command line input of a watch session.
// Zero values mean "not given" and leave the configured value in place.
type WatchOptions struct {
	// ConfigPath is the config file to read. Empty disables the file.
	ConfigPath string
	// ConfigExplicit makes a missing config file an error.
	ConfigExplicit bool

	SearchText     string
	WatchDirectory string
	// FileExtension overrides the configured extension when non-nil.
	FileExtension *string
	PollInterval  time.Duration
	Debug         bool
	JSON          bool
}

// Watch resolves the settings and polls the watch directory until an
// operator signal, ctx cancellation or a fatal cycle error.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	settings, err := a.ResolveSettings(opts)
	if err != nil {
		return err
	}

	a.logConfig.SetLevel(settings.LogLevel)
	a.logConfig.SetJSON(settings.JSONLogs)

	if err := settings.Watch.Validate(); err != nil {
		return err
	}
	if !settings.Watch.FileExtension.IsSet() {
		a.logger.Warn(NoExtensionWarning)
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Debug("failed to close telemetry", "error", err)
		}
	}()

	stop := scheduler.NewStopSignal(a.logger)
	listenCtx, cancelListen := context.WithCancel(ctx)
	defer cancelListen()

	var g errgroup.Group

	g.Go(func() error {
		// Release the listener once polling ends for any reason.
		defer cancelListen()
		return a.scheduler.Run(ctx, settings.Watch, stop)
	})

	g.Go(func() error {
		a.listen(listenCtx, stop)
		return nil
	})

	return g.Wait()
}

// ResolveSettings layers defaults, the config file and the command line
// options, in that order of precedence from lowest to highest.
func (a *App) ResolveSettings(opts WatchOptions) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if opts.ConfigPath != "" {
		loaded, err := a.configLoader.Load(opts.ConfigPath, settings)
		switch {
		case err == nil:
			settings = loaded
		case errors.Is(err, domain.ErrConfigNotFound) && !opts.ConfigExplicit:
			a.logger.Debug("no config file, using flags only", "path", opts.ConfigPath)
		default:
			return settings, zerr.Wrap(err, "failed to load configuration")
		}
	}

	if opts.SearchText != "" {
		settings.Watch.SearchText = opts.SearchText
	}
	if opts.WatchDirectory != "" {
		settings.Watch.WatchDirectory = opts.WatchDirectory
	}
	if opts.FileExtension != nil {
		settings.Watch.FileExtension = domain.NewExtensionFilter(*opts.FileExtension)
	}
	if opts.PollInterval != 0 {
		settings.Watch.PollInterval = opts.PollInterval
	}
	if opts.Debug {
		settings.LogLevel = domain.LogLevelDebug
	}
	if opts.JSON {
		settings.JSONLogs = true
	}

	return settings, nil
}
