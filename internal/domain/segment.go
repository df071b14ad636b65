package domain

import "github.com/campus-navigator/internal/geometry"

// RoadType - класс дороги, влияет только на отображение
type RoadType string

const (
	RoadTypeMain      RoadType = "main"
	RoadTypeSecondary RoadType = "secondary"
	RoadTypePath      RoadType = "path"
)

// ParseRoadType maps arbitrary input onto a known road class. Unknown values
// fall back to secondary.
func ParseRoadType(s string) RoadType {
	switch RoadType(s) {
	case RoadTypeMain, RoadTypeSecondary, RoadTypePath:
		return RoadType(s)
	default:
		return RoadTypeSecondary
	}
}

// Segment - ребро графа: участок дороги между двумя узлами
type Segment struct {
	ID       string
	Name     string
	Type     RoadType
	From     string
	To       string
	Geometry geometry.Shape
}

// Length returns the segment length in meters, 0 if it cannot be measured.
func (s Segment) Length() float64 {
	return geometry.SafeLength(s.Geometry)
}

// Connects reports whether the segment joins a and b in either direction.
func (s Segment) Connects(a, b string) bool {
	return (s.From == a && s.To == b) || (s.From == b && s.To == a)
}
