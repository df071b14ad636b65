package roadgraph

import (
	"math"
	"sort"

	"github.com/campus-navigator/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"
)

// NearbyNode is a node with its geodesic distance from a query point.
type NearbyNode struct {
	Node     domain.Node
	Distance float64 // meters
}

// SpatialIndex wraps tidwall/rtree for radius queries over nodes.
type SpatialIndex struct {
	tree  *rtree.RTreeG[int]
	nodes []domain.Node
}

// NewSpatialIndex indexes node coordinates. The slice is retained and must not
// be modified afterwards.
func NewSpatialIndex(nodes []domain.Node) *SpatialIndex {
	idx := &SpatialIndex{
		tree:  &rtree.RTreeG[int]{},
		nodes: nodes,
	}
	for i, n := range nodes {
		p := [2]float64{n.Lon(), n.Lat()}
		idx.tree.Insert(p, p, i)
	}
	return idx
}

// Within returns nodes within radiusMeters of (lon, lat), nearest first.
// Ties keep input order.
func (idx *SpatialIndex) Within(lon, lat, radiusMeters float64, destinationsOnly bool) []NearbyNode {
	result := make([]NearbyNode, 0)
	if idx == nil || radiusMeters <= 0 {
		return result
	}

	// Convert distance to an approximate bounding box in degrees
	latRad := lat * math.Pi / 180.0
	metersPerDegreeLat := orb.EarthRadius * math.Pi / 180.0
	metersPerDegreeLon := metersPerDegreeLat * math.Cos(latRad)
	if metersPerDegreeLon < 1e-9 {
		metersPerDegreeLon = 1e-9
	}
	deltaLat := radiusMeters / metersPerDegreeLat
	deltaLon := radiusMeters / metersPerDegreeLon

	center := orb.Point{lon, lat}
	hits := make([]int, 0)
	idx.tree.Search(
		[2]float64{lon - deltaLon, lat - deltaLat},
		[2]float64{lon + deltaLon, lat + deltaLat},
		func(min, max [2]float64, i int) bool {
			hits = append(hits, i)
			return true
		},
	)
	sort.Ints(hits)

	for _, i := range hits {
		n := idx.nodes[i]
		if destinationsOnly && !n.IsDestination {
			continue
		}
		d := geo.DistanceHaversine(center, n.Coordinates)
		if d <= radiusMeters {
			result = append(result, NearbyNode{Node: n, Distance: d})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})
	return result
}

// Len returns the number of indexed nodes.
func (idx *SpatialIndex) Len() int {
	if idx == nil {
		return 0
	}
	return idx.tree.Len()
}
