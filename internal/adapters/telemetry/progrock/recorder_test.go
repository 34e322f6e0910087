package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	prog "go.trai.ch/dirwatcher/internal/adapters/telemetry/progrock"
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/dirwatcher/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Debug("Standard Output", "vertex", "poll cycle #1"),
		log.EXPECT().Debug("[DEBUG] debug msg", "vertex", "poll cycle #1"),
		log.EXPECT().Debug("[WARN] warn msg", "vertex", "poll cycle #1"),
		log.EXPECT().Debug("vertex completed", "vertex", "poll cycle #1"),
		log.EXPECT().Debug("vertex failed", "vertex", "poll cycle #2", "error", "boom"),
		log.EXPECT().Debug("vertex cached", "vertex", "poll cycle #3"),
	)

	recorder := prog.New(log)

	ctx, first := recorder.Record(t.Context(), "poll cycle #1")
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, first, fromCtx)

	_, err := first.Stdout().Write([]byte("Standard Output\n"))
	require.NoError(t, err)
	first.Log(domain.LogLevelDebug, "debug msg")
	first.Log(domain.LogLevelWarn, "warn msg")
	first.Complete(nil)

	_, second := recorder.Record(t.Context(), "poll cycle #2")
	second.Complete(errors.New("boom"))

	_, third := recorder.Record(t.Context(), "poll cycle #3")
	third.Cached()
	third.Complete(nil)

	require.NoError(t, recorder.Close())
}
