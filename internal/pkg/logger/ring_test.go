package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestRing_KeepsMostRecent(t *testing.T) {
	r := NewRing(3)

	assert.Empty(t, r.Lines())

	for i := 1; i <= 5; i++ {
		_, err := fmt.Fprintf(r, "line %d\n", i)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Capacity())
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, r.Lines())
}

func TestRing_DefaultCapacity(t *testing.T) {
	r := NewRing(0)
	assert.Equal(t, DefaultRingCapacity, r.Capacity())

	for i := 0; i < 120; i++ {
		_, _ = r.Write([]byte("x"))
	}
	assert.Equal(t, DefaultRingCapacity, r.Len())
}

func TestRingCore_Format(t *testing.T) {
	r := NewRing(10)
	log := zap.New(NewRingCore(r, zapcore.InfoLevel))

	log.Debug("hidden")
	log.Info("Road graph built", zap.Int("vertices", 3))

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] INFO Road graph built \{"vertices": 3\}$`, lines[0])
}

func TestNew_TeesIntoRing(t *testing.T) {
	r := NewRing(5)

	log, err := New("warn", r)
	require.NoError(t, err)

	log.Info("not kept")
	log.Warn("kept")

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "WARN kept")

	log, err = New("not-a-level", nil)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
