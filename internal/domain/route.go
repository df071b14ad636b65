package domain

// DefaultWalkingSpeed - скорость пешехода, м/с (около 5 км/ч)
const DefaultWalkingSpeed = 1.38

// Route - результат построения маршрута
type Route struct {
	StartNodeID   string
	EndNodeID     string
	NodePath      []string
	Segments      []Segment
	Distance      float64 // meters
	EstimatedTime float64 // minutes
}

// Empty reports whether the route has no segments.
func (r Route) Empty() bool {
	return len(r.Segments) == 0
}

// EstimateWalkingMinutes converts a distance in meters into minutes at the
// given walking speed in m/s. A non-positive speed uses DefaultWalkingSpeed.
func EstimateWalkingMinutes(distance, speed float64) float64 {
	if speed <= 0 {
		speed = DefaultWalkingSpeed
	}
	return distance / speed / 60
}

// RouteInfo - сводка маршрута, передаваемая вместе с запросом или ссылкой
type RouteInfo struct {
	Distance      float64 `json:"distance"`
	EstimatedTime float64 `json:"estimated_time"`
	Description   string  `json:"description,omitempty"`
}

// RouteMetadata - дополнительные данные запроса маршрута
type RouteMetadata struct {
	CampusID  string `json:"campus_id,omitempty"`
	KioskID   string `json:"kiosk_id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}
