// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// DisableTimestamps drops the time prefix so pretty output is deterministic.
func (l *Logger) DisableTimestamps() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timeFormat = ""
	l.rebuild()
}
