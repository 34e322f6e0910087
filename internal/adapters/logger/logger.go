package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

// DefaultTimeFormat is the timestamp layout of pretty log lines.
const DefaultTimeFormat = "2006-01-02 15:04:05"

var (
	_ ports.Logger        = (*Logger)(nil)
	_ ports.LogConfigurer = (*Logger)(nil)
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	level      *slog.LevelVar
	output     io.Writer
	jsonMode   bool
	timeFormat string
}

// New creates a new Logger writing pretty, timestamped lines to stdout at info level.
func New() *Logger {
	l := &Logger{
		level:      &slog.LevelVar{},
		output:     os.Stdout,
		timeFormat: DefaultTimeFormat,
	}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stdout is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stdout
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// rebuild replaces the slog handler. Callers must hold mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts).WithTimeFormat(l.timeFormat)
	}
	l.logger = slog.New(handler)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err with its full cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
