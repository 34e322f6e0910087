// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	slate  = "#667085"
	blue   = "#3B82F6"
	yellow = "#F59E0B"
	red    = "#D93025"
)

// PrettyHandler is a slog.Handler that writes one colored line per record.
type PrettyHandler struct {
	out        *termenv.Output
	level      slog.Leveler
	timeFormat string
	attrs      []slog.Attr
	group      string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// Records are written without a timestamp unless WithTimeFormat is used.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stdout
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   newOutput(w),
		level: level,
	}
}

// WithTimeFormat returns a copy of the handler that prefixes every line with
// the record time in the given layout.
func (h *PrettyHandler) WithTimeFormat(layout string) *PrettyHandler {
	clone := *h
	clone.timeFormat = layout
	return &clone
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if h.timeFormat != "" && !r.Time.IsZero() {
		b.WriteString(r.Time.Format(h.timeFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s %s", r.Level.String(), r.Message)

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(attrParts, " "))
	}

	styled := h.out.String(b.String()).Foreground(levelColor(r.Level))
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.RGBColor(red)
	case level >= slog.LevelWarn:
		return termenv.RGBColor(yellow)
	case level >= slog.LevelInfo:
		return termenv.RGBColor(blue)
	default:
		return termenv.RGBColor(slate)
	}
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}

// newOutput honors NO_COLOR and otherwise detects the terminal's profile.
func newOutput(w io.Writer) *termenv.Output {
	profile := termenv.EnvColorProfile()
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}
