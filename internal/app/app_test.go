package app_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dirwatcher/internal/adapters/clock"
	"go.trai.ch/dirwatcher/internal/adapters/telemetry"
	"go.trai.ch/dirwatcher/internal/app"
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports/mocks"
	"go.trai.ch/dirwatcher/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	cycle     *mocks.MockPollCycle
	logger    *mocks.MockLogger
	logConfig *mocks.MockLogConfigurer
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		cycle:     mocks.NewMockPollCycle(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		logConfig: mocks.NewMockLogConfigurer(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	tel := telemetry.NewNoOp()
	sched := scheduler.NewScheduler(f.cycle, clock.New(), tel, f.logger)
	f.app = app.New(f.loader, sched, tel, f.logger, f.logConfig)
	return f
}

func missingConfig(path string, base domain.Settings) (domain.Settings, error) {
	return base, errors.Join(domain.ErrConfigNotFound, errors.New(path))
}

func TestApp_Watch_StopsOnSignal(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		firstCycle := make(chan struct{})

		f.loader.EXPECT().Load("dirwatcher.yaml", gomock.Any()).DoAndReturn(missingConfig)
		f.logConfig.EXPECT().SetLevel(domain.LogLevelInfo)
		f.logConfig.EXPECT().SetJSON(false)
		f.logger.EXPECT().Warn("Received SIGINT")

		f.cycle.EXPECT().Cycle(gomock.Any(), gomock.Any(), domain.WatchConfig{
			WatchDirectory: "/watch",
			SearchText:     "MAGIC",
			FileExtension:  domain.NewExtensionFilter(".txt"),
			PollInterval:   time.Second,
		}).DoAndReturn(func(context.Context, *domain.TrackedSet, domain.WatchConfig) error {
			close(firstCycle)
			return nil
		}).Times(1)

		f.app.WithSignalListener(func(ctx context.Context, stop *scheduler.StopSignal) {
			select {
			case <-firstCycle:
				stop.Request("SIGINT")
			case <-ctx.Done():
			}
		})

		ext := ".txt"
		err := f.app.Watch(t.Context(), app.WatchOptions{
			ConfigPath:     "dirwatcher.yaml",
			SearchText:     "MAGIC",
			WatchDirectory: "/watch",
			FileExtension:  &ext,
		})
		require.NoError(t, err)
	})
}

func TestApp_Watch_FatalErrorReleasesListener(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		fatal := errors.Join(domain.ErrFatalCycle, errors.New("boom"))

		f.logConfig.EXPECT().SetLevel(domain.LogLevelDebug)
		f.logConfig.EXPECT().SetJSON(true)
		f.logger.EXPECT().Warn(app.NoExtensionWarning)
		f.cycle.EXPECT().Cycle(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.TrackedSet, cfg domain.WatchConfig) error {
				assert.False(t, cfg.FileExtension.IsSet())
				return fatal
			})
		f.logger.EXPECT().Error(fatal)

		released := false
		f.app.WithSignalListener(func(ctx context.Context, _ *scheduler.StopSignal) {
			<-ctx.Done()
			released = true
		})

		err := f.app.Watch(t.Context(), app.WatchOptions{
			SearchText:     "MAGIC",
			WatchDirectory: "/watch",
			Debug:          true,
			JSON:           true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFatalCycle)
		assert.True(t, released)
	})
}

func TestApp_Watch_InvalidSettings(t *testing.T) {
	f := newFixture(t)
	f.logConfig.EXPECT().SetLevel(domain.LogLevelInfo)
	f.logConfig.EXPECT().SetJSON(false)
	f.app.WithSignalListener(func(context.Context, *scheduler.StopSignal) {
		t.Fatal("listener must not start")
	})

	err := f.app.Watch(t.Context(), app.WatchOptions{WatchDirectory: "/watch"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.ErrorIs(t, err, domain.ErrMissingSearchText)
}

func TestApp_Watch_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("custom.yaml", gomock.Any()).DoAndReturn(missingConfig)

	err := f.app.Watch(t.Context(), app.WatchOptions{
		ConfigPath:     "custom.yaml",
		ConfigExplicit: true,
		SearchText:     "MAGIC",
		WatchDirectory: "/watch",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_ResolveSettings(t *testing.T) {
	fromFile := domain.Settings{
		Watch: domain.WatchConfig{
			WatchDirectory: "/from/file",
			SearchText:     "FILE",
			FileExtension:  domain.NewExtensionFilter(".log"),
			PollInterval:   5 * time.Second,
		},
		LogLevel: domain.LogLevelInfo,
	}
	empty := ""

	tests := []struct {
		name string
		opts app.WatchOptions
		want domain.Settings
	}{
		{
			name: "file only",
			opts: app.WatchOptions{ConfigPath: "dirwatcher.yaml"},
			want: fromFile,
		},
		{
			name: "flags override file",
			opts: app.WatchOptions{
				ConfigPath:     "dirwatcher.yaml",
				SearchText:     "FLAG",
				WatchDirectory: "/from/flag",
				FileExtension:  &empty,
				PollInterval:   2 * time.Second,
				Debug:          true,
				JSON:           true,
			},
			want: domain.Settings{
				Watch: domain.WatchConfig{
					WatchDirectory: "/from/flag",
					SearchText:     "FLAG",
					FileExtension:  domain.NewExtensionFilter(""),
					PollInterval:   2 * time.Second,
				},
				LogLevel: domain.LogLevelDebug,
				JSONLogs: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.loader.EXPECT().Load("dirwatcher.yaml", domain.DefaultSettings()).Return(fromFile, nil)

			got, err := f.app.ResolveSettings(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApp_ResolveSettings_NoConfigFile(t *testing.T) {
	t.Run("missing default file is ignored", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("dirwatcher.yaml", gomock.Any()).DoAndReturn(missingConfig)

		got, err := f.app.ResolveSettings(app.WatchOptions{ConfigPath: "dirwatcher.yaml", SearchText: "x"})
		require.NoError(t, err)
		assert.Equal(t, "x", got.Watch.SearchText)
		assert.Equal(t, domain.DefaultPollInterval, got.Watch.PollInterval)
		assert.False(t, got.Watch.FileExtension.IsSet(), "no extension flag and no file leaves the filter unset")
	})

	t.Run("empty path skips the loader", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.app.ResolveSettings(app.WatchOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), got)
	})

	t.Run("invalid file is reported", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("dirwatcher.yaml", gomock.Any()).
			Return(domain.Settings{}, errors.Join(domain.ErrInvalidConfig, errors.New("bad yaml")))

		_, err := f.app.ResolveSettings(app.WatchOptions{ConfigPath: "dirwatcher.yaml"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}
