// Package session keeps per-visitor route state: where the visitor is, where
// they want to go and the route between the two.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/campus-navigator/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoStartingPoint is returned when a destination is selected but there
	// is neither a live location nor a default entry node.
	ErrNoStartingPoint = errors.New("no starting point for route")

	// ErrStaleRoute is returned when a newer request overtook this one. The
	// result has been discarded.
	ErrStaleRoute = errors.New("route result superseded by a newer request")

	// ErrSessionNotFound is returned by the registry for unknown ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrOutsideCampus is returned by a Navigator when a position is too far
	// from the campus to be snapped to a node.
	ErrOutsideCampus = errors.New("position is outside the campus")
)

// Navigator computes routes and snaps coordinates to the road network.
// ClosestNode returns ErrOutsideCampus for positions off campus.
type Navigator interface {
	Route(ctx context.Context, startID, endID string) (domain.Route, error)
	ClosestNode(ctx context.Context, lon, lat float64) (*domain.Node, error)
}

// Options configure a session.
type Options struct {
	// DefaultStartNodeID is used as the route start while no live location is known.
	DefaultStartNodeID string
	// Debounce is the minimum interval between two position snaps.
	Debounce time.Duration
	// Clock returns the current time; time.Now when nil.
	Clock func() time.Time
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

// Session - навигационная сессия одного посетителя
type Session struct {
	id     uuid.UUID
	nav    Navigator
	opts   Options
	logger *zap.Logger

	mu            sync.Mutex
	state         domain.SessionState
	location      *domain.Node
	destination   *domain.Node
	route         *domain.Route
	outsideCampus bool
	generation    uint64
	lastObserved  time.Time
	updatedAt     time.Time
}

// New creates an idle session.
func New(id uuid.UUID, nav Navigator, opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:        id,
		nav:       nav,
		opts:      opts,
		logger:    logger.With(zap.String("session_id", id.String())),
		state:     domain.SessionIdle,
		updatedAt: opts.now(),
	}
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// SelectDestination remembers the destination and computes a route to it from
// the live location, or from the default entry node when no location is known.
func (s *Session) SelectDestination(ctx context.Context, node domain.Node) (domain.Route, error) {
	s.mu.Lock()
	s.destination = &node
	s.touch()
	s.mu.Unlock()

	return s.recompute(ctx)
}

// LocationChanged records the visitor's location and recomputes the route if a
// destination is selected. Calling it twice with the same node yields the same
// route.
func (s *Session) LocationChanged(ctx context.Context, node domain.Node) (*domain.Route, error) {
	s.mu.Lock()
	s.location = &node
	s.outsideCampus = false
	s.touch()
	hasDestination := s.destination != nil
	s.mu.Unlock()

	if !hasDestination {
		return nil, nil
	}

	route, err := s.recompute(ctx)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// ObservePosition snaps a raw GPS fix to the nearest node. Fixes arriving
// within the debounce interval of the last successful snap are ignored. When
// the snapped node differs from the current location LocationChanged is called
// and changed is true.
//
// A fix outside the campus drops the live location, so routes start from the
// default entry node again; the session is flagged OutsideCampus until the
// next fix on campus.
func (s *Session) ObservePosition(ctx context.Context, lon, lat float64) (changed bool, route *domain.Route, err error) {
	s.mu.Lock()
	now := s.opts.now()
	if !s.lastObserved.IsZero() && now.Sub(s.lastObserved) < s.opts.Debounce {
		s.mu.Unlock()
		return false, nil, nil
	}
	s.mu.Unlock()

	closest, err := s.nav.ClosestNode(ctx, lon, lat)
	if errors.Is(err, ErrOutsideCampus) {
		return s.leaveCampus(ctx, now, lon, lat)
	}
	if err != nil {
		return false, nil, err
	}

	s.mu.Lock()
	s.lastObserved = now
	s.outsideCampus = false
	same := closest == nil || (s.location != nil && s.location.ID == closest.ID)
	s.mu.Unlock()
	if same {
		return false, nil, nil
	}

	s.logger.Debug("Location snapped to new node",
		zap.String("node_id", closest.ID),
		zap.Float64("lon", lon),
		zap.Float64("lat", lat))

	route, err = s.LocationChanged(ctx, *closest)
	return true, route, err
}

// leaveCampus forgets the live location after an off-campus fix and, if a
// destination is selected, reroutes from the default entry node.
func (s *Session) leaveCampus(ctx context.Context, observedAt time.Time, lon, lat float64) (bool, *domain.Route, error) {
	s.mu.Lock()
	s.lastObserved = observedAt
	entering := !s.outsideCampus
	s.outsideCampus = true
	hadLocation := s.location != nil
	s.location = nil
	hasDestination := s.destination != nil
	s.touch()
	s.mu.Unlock()

	if entering {
		s.logger.Info("Position outside campus, falling back to default start",
			zap.Float64("lon", lon),
			zap.Float64("lat", lat),
			zap.String("default_start_node", s.opts.DefaultStartNodeID))
	}
	if !hadLocation {
		return false, nil, nil
	}
	if !hasDestination {
		return true, nil, nil
	}

	// без пункта входа сессия просто остаётся Idle
	route, err := s.recompute(ctx)
	if errors.Is(err, ErrNoStartingPoint) {
		return true, nil, nil
	}
	if err != nil {
		return true, nil, err
	}
	return true, &route, nil
}

// Clear drops the route and destination. Any computation still in flight is
// discarded when it completes.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.route = nil
	s.destination = nil
	s.state = domain.SessionIdle
	s.touch()
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SessionSnapshot{
		ID:            s.id.String(),
		State:         s.state,
		OutsideCampus: s.outsideCampus,
		UpdatedAt:     s.updatedAt,
	}
	if s.location != nil {
		loc := *s.location
		snap.Location = &loc
	}
	if s.destination != nil {
		dst := *s.destination
		snap.Destination = &dst
	}
	if s.route != nil {
		r := *s.route
		snap.Route = &r
	}
	return snap
}

// UpdatedAt returns the time of the last state change.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// recompute routes from the current start to the current destination. The
// navigator runs outside the lock; its result is applied only if no newer
// request or Clear happened meanwhile.
func (s *Session) recompute(ctx context.Context) (domain.Route, error) {
	s.mu.Lock()
	if s.destination == nil {
		s.mu.Unlock()
		return domain.Route{}, nil
	}

	startID := s.opts.DefaultStartNodeID
	if s.location != nil {
		startID = s.location.ID
	}
	if startID == "" {
		s.route = nil
		s.state = domain.SessionIdle
		s.touch()
		s.mu.Unlock()
		s.logger.Info("No starting point, waiting for location")
		return domain.Route{}, ErrNoStartingPoint
	}

	s.generation++
	gen := s.generation
	endID := s.destination.ID
	s.mu.Unlock()

	route, err := s.nav.Route(ctx, startID, endID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("Discarding stale route",
			zap.String("start_node", startID),
			zap.String("end_node", endID),
			zap.Uint64("generation", gen))
		return domain.Route{}, ErrStaleRoute
	}

	s.touch()
	if err != nil {
		s.route = nil
		s.state = domain.SessionIdle
		return route, err
	}

	s.route = &route
	s.state = domain.SessionRouteComputed
	return route, nil
}

// touch must be called with mu held.
func (s *Session) touch() {
	s.updatedAt = s.opts.now()
}
