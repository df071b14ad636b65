// Package geometry exposes the small capability set the road graph needs from
// a feature's shape: whether it is a point, a representative coordinate and
// a length in meters. Shapes are backed by paulmach/orb geometries.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Shape - геометрия объекта карты, с которой умеет работать граф дорог
type Shape interface {
	// HasPoint reports whether the shape is a single point.
	HasPoint() bool

	// RepresentativeCoordinate returns the point itself for point shapes and
	// the first vertex for everything else. ok is false for empty shapes.
	RepresentativeCoordinate() (orb.Point, bool)

	// Length returns the geodesic length in meters for linear shapes.
	// ok is false when the shape has no meaningful length.
	Length() (float64, bool)
}

type orbShape struct {
	g orb.Geometry
}

// FromOrb wraps an orb geometry. A nil geometry yields nil.
func FromOrb(g orb.Geometry) Shape {
	if g == nil {
		return nil
	}
	return orbShape{g: g}
}

// Point builds a point shape from a lon/lat pair.
func Point(lon, lat float64) Shape {
	return orbShape{g: orb.Point{lon, lat}}
}

// Line builds a line shape from lon/lat pairs.
func Line(coords ...[2]float64) Shape {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c[0], c[1]})
	}
	return orbShape{g: ls}
}

func (s orbShape) HasPoint() bool {
	_, ok := s.g.(orb.Point)
	return ok
}

func (s orbShape) RepresentativeCoordinate() (orb.Point, bool) {
	switch g := s.g.(type) {
	case orb.Point:
		return g, validPoint(g)
	case orb.MultiPoint:
		if len(g) > 0 {
			return g[0], validPoint(g[0])
		}
	case orb.LineString:
		if len(g) > 0 {
			return g[0], validPoint(g[0])
		}
	case orb.MultiLineString:
		if len(g) > 0 && len(g[0]) > 0 {
			return g[0][0], validPoint(g[0][0])
		}
	case orb.Polygon:
		if len(g) > 0 && len(g[0]) > 0 {
			return g[0][0], validPoint(g[0][0])
		}
	case orb.MultiPolygon:
		if len(g) > 0 && len(g[0]) > 0 && len(g[0][0]) > 0 {
			return g[0][0][0], validPoint(g[0][0][0])
		}
	}
	return orb.Point{}, false
}

func (s orbShape) Length() (float64, bool) {
	switch g := s.g.(type) {
	case orb.LineString:
		if len(g) < 2 {
			return 0, false
		}
		return geo.LengthHaversine(g), true
	case orb.MultiLineString:
		if len(g) == 0 {
			return 0, false
		}
		return geo.LengthHaversine(g), true
	}
	return 0, false
}

// Coordinates returns the vertices of linear shapes, used for rendering
// routes. Non-linear shapes return their representative coordinate only.
func Coordinates(s Shape) [][2]float64 {
	if s == nil {
		return nil
	}
	if os, ok := s.(orbShape); ok {
		switch g := os.g.(type) {
		case orb.LineString:
			return toPairs(g)
		case orb.MultiLineString:
			out := make([][2]float64, 0)
			for _, ls := range g {
				out = append(out, toPairs(ls)...)
			}
			return out
		}
	}
	if p, ok := s.RepresentativeCoordinate(); ok {
		return [][2]float64{{p[0], p[1]}}
	}
	return nil
}

// SafeLength returns the shape length, or 0 when the shape is nil or has no
// measurable length.
func SafeLength(s Shape) float64 {
	if s == nil {
		return 0
	}
	l, ok := s.Length()
	if !ok || math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
		return 0
	}
	return l
}

// PathLength sums SafeLength over all shapes.
func PathLength(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += SafeLength(s)
	}
	return total
}

func toPairs(ls orb.LineString) [][2]float64 {
	out := make([][2]float64, 0, len(ls))
	for _, p := range ls {
		out = append(out, [2]float64{p[0], p[1]})
	}
	return out
}

func validPoint(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1])
}
