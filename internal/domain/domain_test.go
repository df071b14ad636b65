package domain

import (
	"testing"

	"github.com/campus-navigator/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeFeature_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		feature  NodeFeature
		ok       bool
		expected string
	}{
		{
			name:     "point with name",
			feature:  NodeFeature{ID: "gate1", Name: "Main Gate", Geometry: geometry.Point(-3.9, 38.9)},
			ok:       true,
			expected: "Main Gate",
		},
		{
			name:     "point without name gets default",
			feature:  NodeFeature{ID: "n1", Geometry: geometry.Point(0, 0)},
			ok:       true,
			expected: DefaultNodeName,
		},
		{
			name:    "line geometry is not a node",
			feature: NodeFeature{ID: "n2", Geometry: geometry.Line([2]float64{0, 0}, [2]float64{1, 1})},
			ok:      false,
		},
		{
			name:    "missing geometry",
			feature: NodeFeature{ID: "n3"},
			ok:      false,
		},
		{
			name:    "missing id",
			feature: NodeFeature{Geometry: geometry.Point(0, 0)},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := tt.feature.Resolve()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, node.Name)
				assert.Equal(t, tt.feature.ID, node.ID)
			}
		})
	}
}

func TestParseRoadType(t *testing.T) {
	assert.Equal(t, RoadTypeMain, ParseRoadType("main"))
	assert.Equal(t, RoadTypePath, ParseRoadType("path"))
	assert.Equal(t, RoadTypeSecondary, ParseRoadType(""))
	assert.Equal(t, RoadTypeSecondary, ParseRoadType("highway"))
}

func TestEstimateWalkingMinutes(t *testing.T) {
	assert.InDelta(t, 3.02, EstimateWalkingMinutes(250, 1.38), 0.01)
	assert.InDelta(t, EstimateWalkingMinutes(250, DefaultWalkingSpeed), EstimateWalkingMinutes(250, 0), 1e-12)
}

func TestRoute_Summarize(t *testing.T) {
	route := Route{
		StartNodeID: "a",
		EndNodeID:   "b",
		NodePath:    []string{"a", "b"},
		Segments: []Segment{
			{ID: "ab", Type: RoadTypePath, From: "a", To: "b", Geometry: geometry.Line([2]float64{0, 0}, [2]float64{0, 0.001})},
		},
		Distance: 111.3,
	}

	summary := route.Summarize()
	require.Len(t, summary.Segments, 1)
	assert.Equal(t, "ab", summary.Segments[0].ID)
	assert.Len(t, summary.Segments[0].Coordinates, 2)
	assert.Greater(t, summary.Segments[0].Length, 100.0)
	assert.Equal(t, []string{}, Route{}.Summarize().NodePath)
}
