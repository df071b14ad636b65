package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := NewRegistry(new(MockNavigator), Options{}, time.Minute, zap.NewNop())

	s := r.Create()
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	r.Delete(s.ID())
	r.Delete(s.ID())
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Evict(t *testing.T) {
	clock := newClock()
	r := NewRegistry(new(MockNavigator), Options{Clock: clock.Now}, 10*time.Minute, nil)

	old := r.Create()
	clock.Advance(8 * time.Minute)
	fresh := r.Create()

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, r.Evict(clock.Now()))

	_, err := r.Get(old.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(fresh.ID())
	assert.NoError(t, err)

	// Activity resets the idle timer.
	clock.Advance(4 * time.Minute)
	fresh.Clear()
	clock.Advance(9 * time.Minute)
	assert.Equal(t, 0, r.Evict(clock.Now()))
}

func TestRegistry_NoTTL(t *testing.T) {
	r := NewRegistry(new(MockNavigator), Options{}, 0, nil)
	r.Create()

	assert.Equal(t, 0, r.Evict(time.Now().Add(24*time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Run(ctx, time.Millisecond)
	assert.Equal(t, 1, r.Len())
}
