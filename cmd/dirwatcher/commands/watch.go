package commands

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/dirwatcher/internal/app"
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	flagPollInterval = "poll-interval"
	flagExt          = "ext"
	flagConfig       = "config"
)

// legacyNames maps the spellings of earlier releases to the current flags.
var legacyNames = map[string]string{
	"pollint": flagPollInterval,
	"fileExt": flagExt,
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [searchText] [watchDir]",
		Short: "Poll a directory and report lines containing the search text",
		Long: `Poll a directory and report lines containing the search text.

Every poll interval the directory is listed, files with the configured
extension are tracked, and each tracked file is scanned for new lines
containing the search text. Stop with Ctrl-C or SIGTERM.

Arguments may be omitted when dirwatcher.yaml provides them.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := watchOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64P(flagPollInterval, "p", domain.DefaultPollInterval.Seconds(), "Seconds between directory scans")
	flags.StringP(flagExt, "e", "", `Extension of files to search, e.g. ".log"`)
	flags.StringP(flagConfig, "c", domain.DefaultConfigFilename, "Path to the config file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("json", false, "Emit logs as JSON")
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if current, ok := legacyNames[name]; ok {
			name = current
		}
		return pflag.NormalizedName(name)
	})

	return cmd
}

func watchOptions(flags *pflag.FlagSet, args []string) (app.WatchOptions, error) {
	var opts app.WatchOptions

	if len(args) > 0 {
		opts.SearchText = args[0]
	}
	if len(args) > 1 {
		opts.WatchDirectory = args[1]
	}

	opts.ConfigPath, _ = flags.GetString(flagConfig)
	opts.ConfigExplicit = flags.Changed(flagConfig)
	opts.Debug, _ = flags.GetBool("debug")
	opts.JSON, _ = flags.GetBool("json")

	if flags.Changed(flagExt) {
		ext, _ := flags.GetString(flagExt)
		opts.FileExtension = &ext
	}

	if flags.Changed(flagPollInterval) {
		seconds, _ := flags.GetFloat64(flagPollInterval)
		interval, err := secondsToDuration(seconds)
		if err != nil {
			return opts, err
		}
		opts.PollInterval = interval
	}

	return opts, nil
}

func secondsToDuration(seconds float64) (time.Duration, error) {
	d := time.Duration(seconds * float64(time.Second))
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) || d <= 0 {
		return 0, errors.Join(
			domain.ErrInvalidConfig,
			zerr.With(
				zerr.Wrap(domain.ErrInvalidPollInterval, "bad --"+flagPollInterval),
				"value", strconv.FormatFloat(seconds, 'g', -1, 64),
			),
		)
	}
	return d, nil
}
