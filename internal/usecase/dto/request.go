package dto

import "github.com/campus-navigator/internal/domain"

// RouteRequest - запрос на построение маршрута между двумя узлами
type RouteRequest struct {
	StartNodeID string                `json:"start_node_id" validate:"required,max=128"`
	EndNodeID   string                `json:"end_node_id" validate:"required,max=128"`
	RouteInfo   *domain.RouteInfo     `json:"route_info,omitempty"`
	Metadata    *domain.RouteMetadata `json:"metadata,omitempty"`
}

// ShareLinkRequest - запрос на формирование ссылки для передачи маршрута на телефон
type ShareLinkRequest struct {
	StartNodeID   string  `json:"start_node_id" validate:"required,max=128"`
	EndNodeID     string  `json:"end_node_id" validate:"omitempty,max=128"`
	Distance      float64 `json:"distance,omitempty" validate:"omitempty,min=0"`
	EstimatedTime float64 `json:"estimated_time,omitempty" validate:"omitempty,min=0"`
	Description   string  `json:"description,omitempty" validate:"omitempty,max=512"`
	CampusID      string  `json:"campus_id,omitempty" validate:"omitempty,max=64"`
}

// PointQuery - координаты точки из query-параметров
type PointQuery struct {
	Lat float64 `json:"lat" query:"lat" validate:"latitude"`
	Lon float64 `json:"lon" query:"lon" validate:"longitude"`
}

// NearbyQuery - поиск узлов в радиусе
type NearbyQuery struct {
	Lat              float64 `json:"lat" query:"lat" validate:"latitude"`
	Lon              float64 `json:"lon" query:"lon" validate:"longitude"`
	RadiusM          float64 `json:"radius_m" query:"radius_m" validate:"required,min=1,max=5000"`
	DestinationsOnly bool    `json:"destinations_only" query:"destinations_only"`
}

// SelectDestinationRequest - выбор пункта назначения в сессии
type SelectDestinationRequest struct {
	NodeID string `json:"node_id" validate:"required,max=128"`
}

// LocationRequest - явное указание текущего узла (например, киоск)
type LocationRequest struct {
	NodeID string `json:"node_id" validate:"required,max=128"`
}

// PositionRequest - GPS-координаты посетителя
type PositionRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}
