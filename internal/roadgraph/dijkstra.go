package roadgraph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/campus-navigator/internal/domain"
	"go.uber.org/zap"
)

// Path is the raw result of a shortest-path query.
type Path struct {
	NodeIDs  []string
	Segments []domain.Segment
	Distance float64 // meters, summed from segment shapes
}

// FindShortestPath runs Dijkstra's algorithm from startID to endID.
//
// If either node is not a vertex the result is empty and ErrNodeNotFound is
// returned; if endID is unreachable the result is empty and ErrNoPath is
// returned. Node hops are mapped to segments through idx; a hop without a
// segment is dropped and logged while the rest of the path is kept. The
// distance is recomputed from the segment shapes rather than taken from the
// tentative distances.
//
// When several shortest paths have equal length the one returned depends on
// vertex insertion order. It is stable for a given graph, nothing more.
func FindShortestPath(g *Graph, idx *SegmentIndex, startID, endID string, logger *zap.Logger) (Path, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, id := range []string{startID, endID} {
		if !g.Has(id) {
			logger.Warn("Cannot find path: node not found in graph", zap.String("node_id", id))
			return Path{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
		}
	}

	if startID == endID {
		return Path{NodeIDs: []string{startID}, Segments: []domain.Segment{}}, nil
	}

	previous, reached := dijkstra(g, startID, endID)
	if !reached {
		logger.Info("No path found",
			zap.String("start_node", startID),
			zap.String("end_node", endID))
		return Path{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, startID, endID)
	}

	nodeIDs := reconstruct(previous, startID, endID, g.Len())
	if nodeIDs == nil {
		logger.Error("Broken predecessor chain",
			zap.String("start_node", startID),
			zap.String("end_node", endID))
		return Path{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, startID, endID)
	}

	path := Path{
		NodeIDs:  nodeIDs,
		Segments: make([]domain.Segment, 0, len(nodeIDs)-1),
	}
	for i := 0; i < len(nodeIDs)-1; i++ {
		from, to := nodeIDs[i], nodeIDs[i+1]
		seg, ok := idx.Lookup(from, to)
		if !ok {
			logger.Warn("No road segment for path hop, dropping it",
				zap.String("from", from),
				zap.String("to", to))
			continue
		}
		path.Segments = append(path.Segments, seg)
		path.Distance += seg.Length()
	}

	logger.Debug("Found path",
		zap.String("start_node", startID),
		zap.String("end_node", endID),
		zap.Int("segments", len(path.Segments)),
		zap.Float64("distance_m", path.Distance))

	return path, nil
}

// dijkstra settles vertices in order of distance from start and stops once
// end is settled or nothing reachable is left.
func dijkstra(g *Graph, start, end string) (map[string]string, bool) {
	dist := map[string]float64{start: 0}
	previous := make(map[string]string)
	settled := make(map[string]bool, g.Len())

	pq := &priorityQueue{{vertex: start, order: g.position(start), dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		current := item.vertex
		if settled[current] {
			continue
		}
		settled[current] = true

		if current == end {
			return previous, true
		}

		for _, nb := range g.Neighbors(current) {
			if settled[nb] {
				continue
			}
			w, _ := g.Weight(current, nb)
			candidate := dist[current] + w

			known, ok := dist[nb]
			if !ok {
				known = math.Inf(1)
			}
			if candidate < known {
				dist[nb] = candidate
				previous[nb] = current
				heap.Push(pq, pqItem{vertex: nb, order: g.position(nb), dist: candidate})
			}
		}
	}

	return previous, false
}

// reconstruct walks previous back from end to start. It returns nil if the
// chain is broken or longer than the graph.
func reconstruct(previous map[string]string, start, end string, limit int) []string {
	reversed := []string{end}
	for current := end; current != start; {
		p, ok := previous[current]
		if !ok || len(reversed) > limit {
			return nil
		}
		reversed = append(reversed, p)
		current = p
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}
