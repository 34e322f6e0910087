package config

import (
	"strconv"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Watchfile represents the structure of the dirwatcher.yaml configuration file.
type Watchfile struct {
	Version string   `yaml:"version"`
	Watch   WatchDTO `yaml:"watch"`
	Log     LogDTO   `yaml:"log"`
}

// WatchDTO holds the watch session settings.
type WatchDTO struct {
	Directory  string `yaml:"directory"`
	SearchText string `yaml:"searchText"`
	// Extension is a pointer so that an explicit empty value can be told apart
	// from an absent key.
	Extension    *string  `yaml:"extension"`
	PollInterval Interval `yaml:"pollInterval"`
}

// LogDTO holds the logging settings.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  *bool  `yaml:"json"`
}

// Interval is a duration that accepts either a Go duration string ("1500ms")
// or a plain number of seconds.
type Interval struct {
	time.Duration
	Set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return zerr.With(zerr.New("pollInterval must be a scalar"), "line", node.Line)
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		secs, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid pollInterval"), "line", node.Line)
		}
		i.Duration = time.Duration(secs * float64(time.Second))
	case "!!str":
		d, err := time.ParseDuration(node.Value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid pollInterval"), "line", node.Line)
		}
		i.Duration = d
	default:
		return zerr.With(zerr.New("invalid pollInterval"), "line", node.Line)
	}

	i.Set = true
	return nil
}
