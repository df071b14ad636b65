package domain

import "time"

// SessionState - состояние навигационной сессии
type SessionState string

const (
	SessionIdle          SessionState = "idle"
	SessionRouteComputed SessionState = "route_computed"
)

// SessionSnapshot - неизменяемый снимок состояния сессии
type SessionSnapshot struct {
	ID            string
	State         SessionState
	Location      *Node
	Destination   *Node
	Route         *Route
	OutsideCampus bool
	UpdatedAt     time.Time
}
