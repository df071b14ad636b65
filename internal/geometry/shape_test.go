package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_HasPoint(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		expected bool
	}{
		{name: "point", shape: Point(1, 2), expected: true},
		{name: "line", shape: Line([2]float64{0, 0}, [2]float64{0, 1}), expected: false},
		{name: "polygon", shape: FromOrb(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.shape.HasPoint())
		})
	}
}

func TestShape_RepresentativeCoordinate(t *testing.T) {
	t.Run("point returns itself", func(t *testing.T) {
		p, ok := Point(-3.92, 38.99).RepresentativeCoordinate()
		require.True(t, ok)
		assert.Equal(t, orb.Point{-3.92, 38.99}, p)
	})

	t.Run("line returns first vertex", func(t *testing.T) {
		p, ok := Line([2]float64{5, 6}, [2]float64{7, 8}).RepresentativeCoordinate()
		require.True(t, ok)
		assert.Equal(t, orb.Point{5, 6}, p)
	})

	t.Run("empty line has no coordinate", func(t *testing.T) {
		_, ok := FromOrb(orb.LineString{}).RepresentativeCoordinate()
		assert.False(t, ok)
	})

	t.Run("nil geometry yields nil shape", func(t *testing.T) {
		assert.Nil(t, FromOrb(nil))
	})
}

func TestShape_Length(t *testing.T) {
	line := orb.LineString{{0, 0}, {0, 0.001}, {0.001, 0.001}}

	l, ok := FromOrb(line).Length()
	require.True(t, ok)
	assert.InDelta(t, geo.LengthHaversine(line), l, 1e-9)
	assert.InDelta(t, 222.4, l, 0.5)

	_, ok = Point(0, 0).Length()
	assert.False(t, ok)

	_, ok = FromOrb(orb.LineString{{0, 0}}).Length()
	assert.False(t, ok)
}

func TestSafeLengthAndPathLength(t *testing.T) {
	a := Line([2]float64{0, 0}, [2]float64{0, 0.001})
	b := Line([2]float64{0, 0.001}, [2]float64{0, 0.002})

	assert.Equal(t, 0.0, SafeLength(nil))
	assert.Equal(t, 0.0, SafeLength(Point(0, 0)))
	assert.InDelta(t, SafeLength(a)+SafeLength(b), PathLength([]Shape{a, nil, b}), 1e-9)
}

func TestCoordinates(t *testing.T) {
	coords := Coordinates(Line([2]float64{1, 2}, [2]float64{3, 4}))
	assert.Equal(t, [][2]float64{{1, 2}, {3, 4}}, coords)

	assert.Equal(t, [][2]float64{{9, 8}}, Coordinates(Point(9, 8)))
	assert.Nil(t, Coordinates(nil))
}
