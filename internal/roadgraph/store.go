package roadgraph

import (
	"context"
	"sync"
	"time"
)

// Store holds the current network. Readers get the network published last;
// Ready is closed once the first network has been published.
type Store struct {
	mu      sync.RWMutex
	network *Network
	ready   chan struct{}
	once    sync.Once
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{ready: make(chan struct{})}
}

// Publish replaces the current network.
func (s *Store) Publish(n *Network) {
	if n == nil {
		return
	}
	s.mu.Lock()
	s.network = n
	s.mu.Unlock()

	s.once.Do(func() { close(s.ready) })
}

// Current returns the current network, if any.
func (s *Store) Current() (*Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network, s.network != nil
}

// Ready is closed when the first network is published.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until a network is available, ctx is done or timeout elapses.
// A non-positive timeout means no timeout beyond ctx.
func (s *Store) Wait(ctx context.Context, timeout time.Duration) (*Network, error) {
	if n, ok := s.Current(); ok {
		return n, nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	select {
	case <-s.ready:
		n, _ := s.Current()
		return n, nil
	case <-ctx.Done():
		return nil, ErrGraphNotReady
	}
}
