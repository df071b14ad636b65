package roadgraph

import (
	"errors"
	"testing"

	"github.com/campus-navigator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func abcNetwork() ([]domain.NodeFeature, []domain.Segment) {
	nodes := []domain.NodeFeature{node("A", 0, 0), node("B", 0, 1), node("C", 0, 2)}
	segments := []domain.Segment{
		segment("A-B", "A", "B", 100),
		segment("B-C", "B", "C", 150),
	}
	return nodes, segments
}

func TestFindShortestPath_EndToEnd(t *testing.T) {
	nodes, segments := abcNetwork()
	network := NewNetwork(nodes, segments, Options{WalkingSpeed: 1.38}, zap.NewNop())

	route, err := network.Route("A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A-B", "B-C"}, segmentIDs(route.Segments))
	assert.Equal(t, []string{"A", "B", "C"}, route.NodePath)
	assert.InDelta(t, 250.0, route.Distance, 1e-9)
	assert.InDelta(t, 3.02, route.EstimatedTime, 0.01)
}

func TestFindShortestPath_ReverseDirection(t *testing.T) {
	nodes, segments := abcNetwork()
	g := BuildGraph(nodes, segments, nil)

	path, err := FindShortestPath(g, NewSegmentIndex(segments), "C", "A", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"B-C", "A-B"}, segmentIDs(path.Segments))
	assert.Equal(t, []string{"C", "B", "A"}, path.NodeIDs)
}

func TestFindShortestPath_ZeroLength(t *testing.T) {
	nodes, segments := abcNetwork()
	g := BuildGraph(nodes, segments, nil)
	idx := NewSegmentIndex(segments)

	for _, id := range g.Vertices() {
		path, err := FindShortestPath(g, idx, id, id, nil)
		require.NoError(t, err)
		assert.Empty(t, path.Segments)
		assert.Equal(t, 0.0, path.Distance)
		assert.Equal(t, []string{id}, path.NodeIDs)
	}
}

func TestFindShortestPath_Unreachable(t *testing.T) {
	nodes := []domain.NodeFeature{node("a", 0, 0), node("b", 0, 1), node("c", 5, 5), node("d", 5, 6)}
	segments := []domain.Segment{segment("ab", "a", "b", 10), segment("cd", "c", "d", 10)}
	g := BuildGraph(nodes, segments, nil)

	path, err := FindShortestPath(g, NewSegmentIndex(segments), "a", "d", zap.NewNop())

	assert.True(t, errors.Is(err, ErrNoPath))
	assert.Empty(t, path.Segments)
	assert.Equal(t, 0.0, path.Distance)
}

func TestFindShortestPath_IsolatedDestination(t *testing.T) {
	nodes := []domain.NodeFeature{node("a", 0, 0), node("b", 0, 1), destination("island", 9, 9)}
	segments := []domain.Segment{segment("ab", "a", "b", 10)}
	g := BuildGraph(nodes, segments, nil)

	_, err := FindShortestPath(g, NewSegmentIndex(segments), "a", "island", nil)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFindShortestPath_NodeNotFound(t *testing.T) {
	nodes, segments := abcNetwork()
	g := BuildGraph(nodes, segments, nil)
	idx := NewSegmentIndex(segments)

	tests := []struct {
		name       string
		start, end string
	}{
		{name: "unknown start", start: "X", end: "A"},
		{name: "unknown end", start: "A", end: "X"},
		{name: "both unknown", start: "X", end: "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindShortestPath(g, idx, tt.start, tt.end, nil)
			assert.ErrorIs(t, err, ErrNodeNotFound)
			assert.Empty(t, path.Segments)
		})
	}

	_, err := FindShortestPath(nil, idx, "A", "B", nil)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestFindShortestPath_PrefersShorterOverFewerHops(t *testing.T) {
	nodes := []domain.NodeFeature{node("s", 0, 0), node("m1", 0, 1), node("m2", 0, 2), node("t", 0, 3)}
	segments := []domain.Segment{
		segment("direct", "s", "t", 500),
		segment("s-m1", "s", "m1", 100),
		segment("m1-m2", "m1", "m2", 100),
		segment("m2-t", "m2", "t", 100),
	}
	network := NewNetwork(nodes, segments, Options{}, nil)

	path, err := network.ShortestPath("s", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"s-m1", "m1-m2", "m2-t"}, segmentIDs(path.Segments))
	assert.InDelta(t, 300.0, path.Distance, 1e-9)
}

func TestFindShortestPath_DropsHopWithoutSegment(t *testing.T) {
	nodes, segments := abcNetwork()
	g := BuildGraph(nodes, segments, nil)

	// Index only knows about A-B; the B-C hop has no segment.
	idx := NewSegmentIndex(segments[:1])

	path, err := FindShortestPath(g, idx, "A", "C", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, path.NodeIDs)
	assert.Equal(t, []string{"A-B"}, segmentIDs(path.Segments))
	assert.InDelta(t, 100.0, path.Distance, 1e-9)
}

func TestFindShortestPath_DuplicateSegmentUsesGraphWeight(t *testing.T) {
	nodes := []domain.NodeFeature{node("A", 0, 0), node("B", 0, 1)}
	segments := []domain.Segment{segment("short", "A", "B", 50), segment("long", "A", "B", 200)}
	network := NewNetwork(nodes, segments, Options{}, nil)

	path, err := network.ShortestPath("A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"long"}, segmentIDs(path.Segments))
	assert.InDelta(t, 200.0, path.Distance, 1e-9)
}

func TestFindShortestPath_Deterministic(t *testing.T) {
	// Two equal-length routes from s to t: via "left" and via "right".
	nodes := []domain.NodeFeature{node("s", 0, 0), node("left", -1, 1), node("right", 1, 1), node("t", 0, 2)}
	segments := []domain.Segment{
		segment("s-left", "s", "left", 100),
		segment("s-right", "s", "right", 100),
		segment("left-t", "left", "t", 100),
		segment("right-t", "right", "t", 100),
	}
	network := NewNetwork(nodes, segments, Options{}, nil)

	first, err := network.ShortestPath("s", "t")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := network.ShortestPath("s", "t")
		require.NoError(t, err)
		assert.Equal(t, segmentIDs(first.Segments), segmentIDs(again.Segments))
		assert.Equal(t, first.Distance, again.Distance)
	}
}

func TestFindShortestPath_TriangleInequality(t *testing.T) {
	nodes := []domain.NodeFeature{
		node("a", 0, 0), node("b", 1, 0), node("c", 2, 0),
		node("d", 0, 1), node("e", 1, 1), node("f", 2, 1),
	}
	segments := []domain.Segment{
		segment("ab", "a", "b", 40),
		segment("bc", "b", "c", 35),
		segment("ad", "a", "d", 20),
		segment("de", "d", "e", 15),
		segment("ef", "e", "f", 60),
		segment("be", "b", "e", 10),
		segment("cf", "c", "f", 5),
		segment("ae", "a", "e", 50),
	}
	network := NewNetwork(nodes, segments, Options{}, nil)

	distance := func(x, y string) float64 {
		p, err := network.ShortestPath(x, y)
		require.NoError(t, err)
		return p.Distance
	}

	ids := network.Graph().Vertices()
	for _, a := range ids {
		for _, b := range ids {
			for _, c := range ids {
				assert.LessOrEqual(t, distance(a, c), distance(a, b)+distance(b, c)+1e-9,
					"d(%s,%s) <= d(%s,%s) + d(%s,%s)", a, c, a, b, b, c)
			}
		}
	}

	// a-b-c-f = 80 beats a-d-e-f = 95
	assert.InDelta(t, 80.0, distance("a", "f"), 1e-9)
	// a-d-e = 35 beats a-e = 50
	assert.InDelta(t, 35.0, distance("a", "e"), 1e-9)
}
