package domain

import (
	"github.com/campus-navigator/internal/geometry"
	"github.com/paulmach/orb"
)

// DefaultNodeName - имя узла, если в данных оно не задано
const DefaultNodeName = "Unnamed Node"

// Node - вершина графа дорог: именованная точка или перекрёсток
type Node struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsDestination bool      `json:"is_destination"`
	Coordinates   orb.Point `json:"coordinates"` // [lon, lat]
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
}

// Lon returns the node longitude.
func (n Node) Lon() float64 { return n.Coordinates[0] }

// Lat returns the node latitude.
func (n Node) Lat() float64 { return n.Coordinates[1] }

// NodeFeature - узел в том виде, в каком он пришёл из источника данных
type NodeFeature struct {
	ID            string
	Name          string
	IsDestination bool
	Description   string
	Category      string
	ImageURL      string
	Geometry      geometry.Shape
}

// Resolve converts the feature into a Node. ok is false when the feature has
// no id or its geometry is not a point.
func (f NodeFeature) Resolve() (Node, bool) {
	if f.ID == "" || f.Geometry == nil || !f.Geometry.HasPoint() {
		return Node{}, false
	}
	p, ok := f.Geometry.RepresentativeCoordinate()
	if !ok {
		return Node{}, false
	}

	name := f.Name
	if name == "" {
		name = DefaultNodeName
	}

	return Node{
		ID:            f.ID,
		Name:          name,
		IsDestination: f.IsDestination,
		Coordinates:   p,
		Description:   f.Description,
		Category:      f.Category,
		ImageURL:      f.ImageURL,
	}, true
}
