package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/geometry"
	"github.com/campus-navigator/internal/roadgraph"
	"github.com/campus-navigator/internal/usecase"
)

// Кампус для тестов: gate - junction - library по дорожкам примерно по 111.3 м,
// лаборатория lab стоит отдельно и недостижима
func campusNodes() []domain.NodeFeature {
	return []domain.NodeFeature{
		{ID: "gate", Name: "Main Gate", Geometry: geometry.Point(0, 0)},
		{ID: "junction", Name: "Junction", Geometry: geometry.Point(0, 0.001)},
		{ID: "library", Name: "Library", IsDestination: true, Geometry: geometry.Point(0.001, 0.001)},
		{ID: "lab", Name: "Lab", IsDestination: true, Geometry: geometry.Point(0.01, 0.01)},
	}
}

func campusSegments() []domain.Segment {
	return []domain.Segment{
		{
			ID: "r1", Name: "Gate Walk", Type: domain.RoadTypeMain, From: "gate", To: "junction",
			Geometry: geometry.Line([2]float64{0, 0}, [2]float64{0, 0.001}),
		},
		{
			ID: "r2", Name: "Library Path", Type: domain.RoadTypePath, From: "junction", To: "library",
			Geometry: geometry.Line([2]float64{0, 0.001}, [2]float64{0.001, 0.001}),
		},
	}
}

// loadedGraph returns a graph use case with the test campus already published.
func loadedGraph(t *testing.T) *usecase.GraphUseCase {
	t.Helper()

	source := &MockFeatureSource{}
	source.On("LoadNodes", mock.Anything).Return(campusNodes(), nil)
	source.On("LoadSegments", mock.Anything).Return(campusSegments(), nil)

	graph := usecase.NewGraphUseCase(source, roadgraph.NewStore(), domain.DefaultWalkingSpeed, 50*time.Millisecond, zap.NewNop())
	_, err := graph.Load(context.Background())
	require.NoError(t, err)
	return graph
}
