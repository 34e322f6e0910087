package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/dirwatcher/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports vertex progress at debug level.
// Only vertices that have not completed are remembered, so memory stays
// bounded over a long watch session.
type LogWriter struct {
	logger ports.Logger

	mu      sync.Mutex
	running map[string]string
}

// NewLogWriter creates a new LogWriter.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:  logger,
		running: make(map[string]string),
	}
}

// WriteStatus processes one batch of progrock updates.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.updateVertex(v)
	}

	for _, l := range update.Logs {
		text := strings.TrimRight(string(l.Data), "\n")
		if text == "" {
			continue
		}
		w.logger.Debug(text, "vertex", w.nameOf(l.Vertex))
	}

	return nil
}

func (w *LogWriter) updateVertex(v *progrock.Vertex) {
	if v.Completed == nil {
		w.running[v.Id] = v.Name
		return
	}

	delete(w.running, v.Id)
	switch {
	case v.Error != nil:
		w.logger.Debug("vertex failed", "vertex", v.Name, "error", *v.Error)
	case v.Cached:
		w.logger.Debug("vertex cached", "vertex", v.Name)
	default:
		w.logger.Debug("vertex completed", "vertex", v.Name)
	}
}

func (w *LogWriter) nameOf(id string) string {
	if name, ok := w.running[id]; ok {
		return name
	}
	return id
}

// Running returns the number of vertices that have started but not completed.
func (w *LogWriter) Running() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.running)
}

// Close does nothing; the logger is owned by the caller.
func (w *LogWriter) Close() error {
	return nil
}
