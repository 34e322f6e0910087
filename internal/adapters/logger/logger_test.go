package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dirwatcher/internal/adapters/logger"
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 and drops timestamps to keep the output deterministic.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.DisableTimestamps()
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("New File detected : a.txt")
	lg.Warn("Received SIGINT")

	g := goldie.New(t)
	g.Assert(t, "logger_info_warn", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("tracked files", "count", 1)
	assert.Empty(t, buf.String(), "debug is hidden at info level")

	lg.SetLevel(domain.LogLevelDebug)
	lg.Debug("tracked files", "count", 1)
	assert.Equal(t, "DEBUG tracked files count=1\n", buf.String())
}

func TestLogger_SetLevelError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(domain.LogLevelError)

	lg.Info("quiet")
	lg.Warn("quiet")
	assert.Empty(t, buf.String())

	lg.Error(errors.New("loud"))
	assert.Equal(t, "ERROR Error: loud\n", buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := errors.Join(
		domain.ErrReadFile,
		zerr.With(zerr.Wrap(errors.New("permission denied"), "failed to open file"), "path", "/watch/a.txt"),
	)
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("Magic text found", "file", "a.txt", "line", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "Magic text found", record["msg"])
	assert.Equal(t, "a.txt", record["file"])
	assert.InDelta(t, 3, record["line"], 0)
}

func TestLogger_JSON_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(errors.New("boom"), "cycle failed"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record, "error")
}

func TestLogger_SetJSON_KeepsLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(domain.LogLevelDebug)
	lg.SetJSON(true)

	lg.Debug("visible")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
