package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingWorker runs until stopped.
type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: NewBaseWorker(name, "stream:test", "test-group", zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	w.MarkProcessed()
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stuckWorker ignores Stop.
type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(0, zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
	assert.Equal(t, DefaultShutdownTimeout, m.shutdownTimeout)
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(time.Second, zap.NewNop())
	a := newBlockingWorker("a")
	b := newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool { return a.started.Load() && b.started.Load() }, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	stats := m.Stats()
	assert.Len(t, stats, 2)
	assert.Equal(t, int64(1), stats["a"].Processed)
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(20*time.Millisecond, zap.NewNop())
	w := &stuckWorker{
		BaseWorker: NewBaseWorker("stuck", "stream:test", "test-group", zap.NewNop()),
		release:    make(chan struct{}),
	}
	defer close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}

func TestBaseWorker(t *testing.T) {
	w := NewBaseWorker("route-request", "stream:route:request", "navigator", zap.NewNop())

	assert.Equal(t, "route-request", w.Name())
	assert.Equal(t, "stream:route:request", w.Stream())
	assert.Equal(t, "navigator", w.ConsumerGroup())
	assert.False(t, w.IsStopped())

	w.MarkProcessed()
	w.MarkFailed()
	w.MarkSkipped()
	w.MarkSkipped()
	assert.Equal(t, Stats{Processed: 1, Failed: 1, Skipped: 2}, w.Stats())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case <-w.StopChan():
	default:
		t.Fatal("stop channel not closed")
	}
}
