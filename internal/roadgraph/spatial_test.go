package roadgraph

import (
	"testing"

	"github.com/campus-navigator/internal/domain"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialIndex_Within(t *testing.T) {
	nodes := []domain.Node{
		{ID: "near", Coordinates: orb.Point{0, 0.0005}},                    // ~55 m
		{ID: "center", Coordinates: orb.Point{0, 0}, IsDestination: true},  // 0 m
		{ID: "mid", Coordinates: orb.Point{0.001, 0}, IsDestination: true}, // ~111 m
		{ID: "far", Coordinates: orb.Point{0.01, 0}},                       // ~1.1 km
	}
	idx := NewSpatialIndex(nodes)
	require.Equal(t, 4, idx.Len())

	got := idx.Within(0, 0, 200, false)
	ids := make([]string, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.Node.ID)
	}
	assert.Equal(t, []string{"center", "near", "mid"}, ids)
	assert.InDelta(t, 55.6, got[1].Distance, 1)

	got = idx.Within(0, 0, 200, true)
	require.Len(t, got, 2)
	assert.Equal(t, "center", got[0].Node.ID)
	assert.Equal(t, "mid", got[1].Node.ID)

	assert.Empty(t, idx.Within(0, 0, 0, false))
	assert.Empty(t, idx.Within(1, 1, 50, false))
}

func TestSpatialIndex_Nil(t *testing.T) {
	var idx *SpatialIndex
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Within(0, 0, 100, false))
}
