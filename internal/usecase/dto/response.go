package dto

import (
	"time"

	"github.com/campus-navigator/internal/domain"
)

// RouteResponse - построенный маршрут
type RouteResponse struct {
	Route        domain.RouteSummary   `json:"route"`
	GraphVersion string                `json:"graph_version"`
	Cached       bool                  `json:"cached"`
	RouteInfo    *domain.RouteInfo     `json:"route_info,omitempty"`
	Metadata     *domain.RouteMetadata `json:"metadata,omitempty"`
}

// ShareLinkResponse - ссылка для QR-кода
type ShareLinkResponse struct {
	URL         string `json:"url"`
	StartNodeID string `json:"start_node_id"`
	EndNodeID   string `json:"end_node_id"`
}

// NodeListResponse - список узлов
type NodeListResponse struct {
	Nodes []domain.Node `json:"nodes"`
	Total int           `json:"total"`
}

// NearestNodeResponse - ближайший к точке узел графа
type NearestNodeResponse struct {
	Node     domain.Node `json:"node"`
	Distance float64     `json:"distance"` // meters
}

// NearbyNode - узел и расстояние до него
type NearbyNode struct {
	Node     domain.Node `json:"node"`
	Distance float64     `json:"distance"` // meters
}

// NearbyNodesResponse - узлы в радиусе, ближайшие первыми
type NearbyNodesResponse struct {
	Nodes []NearbyNode `json:"nodes"`
	Total int          `json:"total"`
}

// SessionResponse - состояние навигационной сессии
type SessionResponse struct {
	ID            string               `json:"id"`
	State         domain.SessionState  `json:"state"`
	Location      *domain.Node         `json:"location,omitempty"`
	Destination   *domain.Node         `json:"destination,omitempty"`
	Route         *domain.RouteSummary `json:"route,omitempty"`
	OutsideCampus bool                 `json:"outside_campus"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// PositionResponse - результат обработки GPS-координат. При OutsideCampus
// маршрут строится от пункта входа по умолчанию
type PositionResponse struct {
	Changed       bool            `json:"changed"`
	OutsideCampus bool            `json:"outside_campus"`
	Session       SessionResponse `json:"session"`
}

// DebugLogResponse - последние строки лога
type DebugLogResponse struct {
	Lines    []string `json:"lines"`
	Capacity int      `json:"capacity"`
}

// ConvertSession converts a session snapshot into its response form.
func ConvertSession(snap domain.SessionSnapshot) SessionResponse {
	resp := SessionResponse{
		ID:            snap.ID,
		State:         snap.State,
		Location:      snap.Location,
		Destination:   snap.Destination,
		OutsideCampus: snap.OutsideCampus,
		UpdatedAt:     snap.UpdatedAt,
	}
	if snap.Route != nil {
		summary := snap.Route.Summarize()
		resp.Route = &summary
	}
	return resp
}
