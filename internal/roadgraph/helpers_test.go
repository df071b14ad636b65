package roadgraph

import (
	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/geometry"
	"github.com/paulmach/orb"
)

// fixedLine is a shape with a preset length, so tests can state weights directly.
type fixedLine struct {
	length float64
}

func (f fixedLine) HasPoint() bool                              { return false }
func (f fixedLine) RepresentativeCoordinate() (orb.Point, bool) { return orb.Point{}, false }
func (f fixedLine) Length() (float64, bool)                     { return f.length, true }

func node(id string, lon, lat float64) domain.NodeFeature {
	return domain.NodeFeature{ID: id, Name: id, Geometry: geometry.Point(lon, lat)}
}

func destination(id string, lon, lat float64) domain.NodeFeature {
	f := node(id, lon, lat)
	f.IsDestination = true
	return f
}

func segment(id, from, to string, length float64) domain.Segment {
	return domain.Segment{
		ID:       id,
		Name:     id,
		Type:     domain.RoadTypePath,
		From:     from,
		To:       to,
		Geometry: fixedLine{length: length},
	}
}

func segmentIDs(segments []domain.Segment) []string {
	ids := make([]string, 0, len(segments))
	for _, s := range segments {
		ids = append(ids, s.ID)
	}
	return ids
}
