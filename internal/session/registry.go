package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry holds live sessions and evicts the ones left idle longer than ttl.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	nav      Navigator
	opts     Options
	ttl      time.Duration
	logger   *zap.Logger
}

// NewRegistry creates an empty registry. A non-positive ttl disables eviction.
func NewRegistry(nav Navigator, opts Options, ttl time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		nav:      nav,
		opts:     opts,
		ttl:      ttl,
		logger:   logger,
	}
}

// Create starts a new session.
func (r *Registry) Create() *Session {
	s := New(uuid.New(), r.nav, r.opts, r.logger)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.logger.Debug("Session created", zap.String("session_id", s.ID().String()))
	return s
}

// Get returns a session by id.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session. Unknown ids are ignored.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Evict removes sessions whose last update is older than ttl and returns how
// many were removed.
func (r *Registry) Evict(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.UpdatedAt()) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		r.logger.Info("Evicted idle sessions",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(r.sessions)))
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Evict(r.opts.now())
		}
	}
}
