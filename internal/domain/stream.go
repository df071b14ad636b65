package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRouteRequest  = "stream:route:request"
	StreamRouteDone     = "stream:route:done"
	StreamRouteComputed = "stream:route:computed"
)

// RouteRequestEvent - входящий запрос на построение маршрута (например, от киоска)
type RouteRequestEvent struct {
	RequestID   uuid.UUID      `json:"request_id"`
	StartNodeID string         `json:"start_node_id"`
	EndNodeID   string         `json:"end_node_id"`
	RouteInfo   *RouteInfo     `json:"route_info,omitempty"`
	Metadata    *RouteMetadata `json:"metadata,omitempty"`
}

// Valid reports whether both endpoints are present.
func (e *RouteRequestEvent) Valid() bool {
	return e.StartNodeID != "" && e.EndNodeID != ""
}

// RouteDoneEvent - результат обработки запроса маршрута
type RouteDoneEvent struct {
	RequestID   uuid.UUID     `json:"request_id"`
	StartNodeID string        `json:"start_node_id"`
	EndNodeID   string        `json:"end_node_id"`
	Route       *RouteSummary `json:"route,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// RouteComputedEvent - событие для слоя отображения: маршрут построен
type RouteComputedEvent struct {
	SessionID    string       `json:"session_id,omitempty"`
	GraphVersion string       `json:"graph_version"`
	Route        RouteSummary `json:"route"`
}

// RouteSummary - сериализуемое представление маршрута
type RouteSummary struct {
	StartNodeID   string           `json:"start_node_id"`
	EndNodeID     string           `json:"end_node_id"`
	NodePath      []string         `json:"node_path"`
	Segments      []SegmentSummary `json:"segments"`
	Distance      float64          `json:"distance"`
	EstimatedTime float64          `json:"estimated_time"`
}

// SegmentSummary - сериализуемое представление участка дороги
type SegmentSummary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        RoadType     `json:"type"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Length      float64      `json:"length"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
