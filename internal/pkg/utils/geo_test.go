package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	// 0.001 degree of latitude is about 111 m
	assert.InDelta(t, 111.2, DistanceMeters(0, 0, 0.001, 0), 0.5)
	assert.Equal(t, 0.0, DistanceMeters(38.99, -3.92, 38.99, -3.92))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		valid    bool
	}{
		{name: "campus", lat: 38.99, lon: -3.92, valid: true},
		{name: "pole", lat: 90, lon: 180, valid: true},
		{name: "bad latitude", lat: 91, lon: 0, valid: false},
		{name: "bad longitude", lat: 0, lon: -181, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}

	assert.True(t, ValidateRadius(250))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(MaxNearbyRadiusMeters+1))
}
