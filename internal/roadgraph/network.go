package roadgraph

import (
	"strconv"
	"strings"
	"time"

	"github.com/campus-navigator/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"
)

// DefaultCampusBuffer - запас вокруг узлов карты, в пределах которого
// посетитель считается находящимся на территории, м
const DefaultCampusBuffer = 500.0

// Options configure a Network.
type Options struct {
	Version      string
	Source       string
	WalkingSpeed float64 // m/s
	// CampusBuffer pads the node extent when deciding whether a position is
	// on campus. Zero means DefaultCampusBuffer, negative disables the check.
	CampusBuffer float64
}

// Network is a built road graph together with the node and segment lookups
// the routing operations need. It is immutable once constructed.
type Network struct {
	graph        *Graph
	nodes        []domain.Node
	byID         map[string]int
	routable     []domain.Node
	destinations []domain.Node
	segments     []domain.Segment
	segmentIndex *SegmentIndex
	spatial      *SpatialIndex
	campus       orb.Bound
	hasCampus    bool
	stats        BuildStats
	opts         Options
	builtAt      time.Time
	buildTime    time.Duration
	logger       *zap.Logger
}

// NewNetwork builds the graph and its indices from raw features.
func NewNetwork(nodes []domain.NodeFeature, segments []domain.Segment, opts Options, logger *zap.Logger) *Network {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.WalkingSpeed <= 0 {
		opts.WalkingSpeed = domain.DefaultWalkingSpeed
	}
	if opts.CampusBuffer == 0 {
		opts.CampusBuffer = DefaultCampusBuffer
	}

	started := time.Now()
	res := build(nodes, segments, logger)

	if opts.Version == "" {
		opts.Version = strconv.FormatInt(started.UnixNano(), 36)
	}

	n := &Network{
		graph:        res.graph,
		nodes:        res.nodes,
		byID:         make(map[string]int, len(res.nodes)),
		segments:     res.segments,
		segmentIndex: NewSegmentIndex(res.segments),
		spatial:      NewSpatialIndex(res.nodes),
		stats:        res.stats,
		opts:         opts,
		builtAt:      started,
		logger:       logger,
	}

	for i, node := range res.nodes {
		n.byID[node.ID] = i
		if res.graph.Has(node.ID) {
			n.routable = append(n.routable, node)
		}
		if node.IsDestination {
			n.destinations = append(n.destinations, node)
		}
	}
	if len(res.nodes) > 0 && opts.CampusBuffer > 0 {
		n.campus = geo.BoundPad(nodeBound(res.nodes), opts.CampusBuffer)
		n.hasCampus = true
	}
	n.buildTime = time.Since(started)

	return n
}

func nodeBound(nodes []domain.Node) orb.Bound {
	points := make(orb.MultiPoint, 0, len(nodes))
	for _, node := range nodes {
		points = append(points, node.Coordinates)
	}
	return points.Bound()
}

// Graph returns the underlying read-only graph.
func (n *Network) Graph() *Graph { return n.graph }

// Version identifies this build; it changes on every reload.
func (n *Network) Version() string { return n.opts.Version }

// Node returns a node by exact id.
func (n *Network) Node(id string) (domain.Node, bool) {
	i, ok := n.byID[id]
	if !ok {
		return domain.Node{}, false
	}
	return n.nodes[i], true
}

// ResolveNodeID matches id exactly and falls back to a case-insensitive match,
// which is how ids typed into share links are looked up.
func (n *Network) ResolveNodeID(id string) (string, bool) {
	if _, ok := n.byID[id]; ok {
		return id, true
	}
	for _, node := range n.nodes {
		if strings.EqualFold(node.ID, id) {
			return node.ID, true
		}
	}
	return "", false
}

// Nodes returns every node with a point coordinate, in input order.
func (n *Network) Nodes() []domain.Node {
	return append([]domain.Node(nil), n.nodes...)
}

// Destinations returns the pickable destination nodes, in input order.
func (n *Network) Destinations() []domain.Node {
	return append([]domain.Node(nil), n.destinations...)
}

// Segments returns the valid segments, in input order.
func (n *Network) Segments() []domain.Segment {
	return append([]domain.Segment(nil), n.segments...)
}

// ClosestNode snaps a coordinate to the closest node that is a graph vertex,
// so the result can always be used as a route endpoint.
func (n *Network) ClosestNode(lon, lat float64) *domain.Node {
	return FindClosestNode(lon, lat, n.routable)
}

// Contains reports whether (lon, lat) lies inside the node extent padded by
// the campus buffer. Without nodes or with the check disabled every position
// is on campus.
func (n *Network) Contains(lon, lat float64) bool {
	if !n.hasCampus {
		return true
	}
	return n.campus.Contains(orb.Point{lon, lat})
}

// Nearby returns nodes within radiusMeters, nearest first.
func (n *Network) Nearby(lon, lat, radiusMeters float64, destinationsOnly bool) []NearbyNode {
	return n.spatial.Within(lon, lat, radiusMeters, destinationsOnly)
}

// ShortestPath runs the path engine over this network.
func (n *Network) ShortestPath(startID, endID string) (Path, error) {
	return FindShortestPath(n.graph, n.segmentIndex, startID, endID, n.logger)
}

// Route computes a walking route with distance and estimated time.
func (n *Network) Route(startID, endID string) (domain.Route, error) {
	path, err := n.ShortestPath(startID, endID)
	if err != nil {
		return domain.Route{StartNodeID: startID, EndNodeID: endID}, err
	}

	return domain.Route{
		StartNodeID:   startID,
		EndNodeID:     endID,
		NodePath:      path.NodeIDs,
		Segments:      path.Segments,
		Distance:      path.Distance,
		EstimatedTime: domain.EstimateWalkingMinutes(path.Distance, n.opts.WalkingSpeed),
	}, nil
}

// Stats summarises the build.
func (n *Network) Stats() domain.GraphStats {
	stats := domain.GraphStats{
		Version:         n.opts.Version,
		Source:          n.opts.Source,
		Vertices:        n.graph.Len(),
		Edges:           n.graph.EdgeCount(),
		Nodes:           n.stats.Nodes,
		Destinations:    n.stats.Destinations,
		Segments:        n.stats.Segments,
		SkippedNodes:    n.stats.SkippedNodes,
		SkippedSegments: n.stats.SkippedSegments,
		DuplicateEdges:  n.stats.DuplicateEdges,
		BuiltAt:         n.builtAt,
		BuildDurationMS: float64(n.buildTime.Microseconds()) / 1000,
	}

	if len(n.nodes) > 0 {
		b := nodeBound(n.nodes)
		stats.Coverage = domain.BoundingBox{
			MinLat: b.Min.Lat(),
			MinLon: b.Min.Lon(),
			MaxLat: b.Max.Lat(),
			MaxLon: b.Max.Lon(),
		}
	}

	return stats
}
