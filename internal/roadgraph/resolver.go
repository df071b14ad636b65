package roadgraph

import (
	"math"

	"github.com/campus-navigator/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FindClosestNode returns the node closest to (lon, lat), or nil when nodes is
// empty.
//
// Distance is planar Euclidean in degree space, not geodesic. Across a campus
// (a few kilometers) the ordering matches true distance closely enough; it
// is not meant for larger areas. On ties the first node in input order wins.
func FindClosestNode(lon, lat float64, nodes []domain.Node) *domain.Node {
	if len(nodes) == 0 {
		return nil
	}

	query := orb.Point{lon, lat}
	best := -1
	minDistance := math.Inf(1)

	for i := range nodes {
		d := planar.Distance(query, nodes[i].Coordinates)
		if d < minDistance {
			minDistance = d
			best = i
		}
	}

	if best < 0 {
		return nil
	}
	closest := nodes[best]
	return &closest
}
