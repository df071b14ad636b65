package roadgraph

import (
	"github.com/campus-navigator/internal/domain"
	"go.uber.org/zap"
)

// BuildStats describes what a build kept and what it dropped.
type BuildStats struct {
	Nodes           int
	Destinations    int
	SkippedNodes    int
	Segments        int
	SkippedSegments int
	DuplicateEdges  int
}

type buildResult struct {
	graph    *Graph
	nodes    []domain.Node
	segments []domain.Segment
	stats    BuildStats
}

// BuildGraph builds the road graph from node and segment features.
//
// Every valid segment contributes an edge in both directions weighted by its
// length in meters. When two segments join the same pair of nodes the last one
// wins; weights are not merged. Isolated destination nodes become vertices with
// no neighbours. Invalid input is skipped and logged, never fatal. Inputs are
// not modified.
func BuildGraph(nodes []domain.NodeFeature, segments []domain.Segment, logger *zap.Logger) *Graph {
	return build(nodes, segments, logger).graph
}

func build(nodes []domain.NodeFeature, segments []domain.Segment, logger *zap.Logger) buildResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := buildResult{
		graph:    NewGraph(),
		nodes:    make([]domain.Node, 0, len(nodes)),
		segments: make([]domain.Segment, 0, len(segments)),
	}
	known := make(map[string]struct{}, len(nodes))
	pairs := make(map[pairKey]int, len(segments))

	for _, f := range nodes {
		node, ok := f.Resolve()
		if !ok {
			res.stats.SkippedNodes++
			logger.Debug("Skipping node without id or point geometry", zap.String("node_id", f.ID))
			continue
		}
		if _, dup := known[node.ID]; dup {
			res.stats.SkippedNodes++
			logger.Warn("Duplicate node id, keeping first occurrence", zap.String("node_id", node.ID))
			continue
		}
		known[node.ID] = struct{}{}
		res.nodes = append(res.nodes, node)
		if node.IsDestination {
			res.stats.Destinations++
		}
	}
	res.stats.Nodes = len(res.nodes)

	for _, s := range segments {
		if s.From == "" || s.To == "" || s.From == s.To {
			res.stats.SkippedSegments++
			logger.Debug("Skipping segment with invalid endpoints",
				zap.String("segment_id", s.ID),
				zap.String("from", s.From),
				zap.String("to", s.To))
			continue
		}

		_, fromOK := known[s.From]
		_, toOK := known[s.To]
		if !fromOK || !toOK {
			res.stats.SkippedSegments++
			logger.Warn("Segment references unknown node",
				zap.String("segment_id", s.ID),
				zap.String("from", s.From),
				zap.String("to", s.To),
				zap.Bool("from_known", fromOK),
				zap.Bool("to_known", toOK))
			continue
		}

		length, ok := segmentLength(s)
		if !ok {
			res.stats.SkippedSegments++
			logger.Warn("Segment has no measurable length", zap.String("segment_id", s.ID))
			continue
		}

		res.graph.SetEdge(s.From, s.To, length)

		// дубликат пары заменяет прежний сегмент на его месте
		key := newPairKey(s.From, s.To)
		if i, dup := pairs[key]; dup {
			res.stats.DuplicateEdges++
			logger.Debug("Duplicate segment overwrote existing edge",
				zap.String("segment_id", s.ID),
				zap.String("replaced_segment_id", res.segments[i].ID),
				zap.String("from", s.From),
				zap.String("to", s.To))
			res.segments[i] = s
			continue
		}
		pairs[key] = len(res.segments)
		res.segments = append(res.segments, s)
	}
	res.stats.Segments = len(res.segments)

	for _, n := range res.nodes {
		if n.IsDestination {
			res.graph.AddVertex(n.ID)
		}
	}

	logger.Info("Road graph built",
		zap.Int("vertices", res.graph.Len()),
		zap.Int("edges", res.graph.EdgeCount()),
		zap.Int("nodes", res.stats.Nodes),
		zap.Int("destinations", res.stats.Destinations),
		zap.Int("segments", res.stats.Segments),
		zap.Int("skipped_nodes", res.stats.SkippedNodes),
		zap.Int("skipped_segments", res.stats.SkippedSegments),
		zap.Int("duplicate_edges", res.stats.DuplicateEdges))

	return res
}

func segmentLength(s domain.Segment) (float64, bool) {
	if s.Geometry == nil {
		return 0, false
	}
	l, ok := s.Geometry.Length()
	if !ok || l < 0 {
		return 0, false
	}
	return l, true
}
