package roadgraph

import (
	"testing"

	"github.com/campus-navigator/internal/domain"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClosestNode(t *testing.T) {
	nodes := []domain.Node{
		{ID: "origin", Coordinates: orb.Point{0, 0}},
		{ID: "one", Coordinates: orb.Point{1, 1}},
		{ID: "five", Coordinates: orb.Point{5, 5}},
	}

	tests := []struct {
		name     string
		lon, lat float64
		expected string
	}{
		{name: "near origin", lon: 0.1, lat: 0.1, expected: "origin"},
		{name: "exact match", lon: 5, lat: 5, expected: "five"},
		{name: "closer to one", lon: 1.4, lat: 0.9, expected: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closest := FindClosestNode(tt.lon, tt.lat, nodes)
			require.NotNil(t, closest)
			assert.Equal(t, tt.expected, closest.ID)
		})
	}
}

func TestFindClosestNode_Empty(t *testing.T) {
	assert.Nil(t, FindClosestNode(0, 0, nil))
	assert.Nil(t, FindClosestNode(0, 0, []domain.Node{}))
}

func TestFindClosestNode_TieKeepsFirst(t *testing.T) {
	nodes := []domain.Node{
		{ID: "west", Coordinates: orb.Point{-1, 0}},
		{ID: "east", Coordinates: orb.Point{1, 0}},
	}

	closest := FindClosestNode(0, 0, nodes)
	require.NotNil(t, closest)
	assert.Equal(t, "west", closest.ID)
}

func TestFindClosestNode_ReturnsCopy(t *testing.T) {
	nodes := []domain.Node{{ID: "a", Name: "A"}}

	closest := FindClosestNode(0, 0, nodes)
	closest.Name = "changed"

	assert.Equal(t, "A", nodes[0].Name)
}
