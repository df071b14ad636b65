package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/geometry"
	"github.com/campus-navigator/internal/roadgraph"
	"github.com/campus-navigator/internal/usecase"
)

type staticSource struct{}

func (staticSource) Name() string { return "static" }

func (staticSource) LoadNodes(ctx context.Context) ([]domain.NodeFeature, error) {
	return []domain.NodeFeature{
		{ID: "gate", Name: "Main Gate", Geometry: geometry.Point(0, 0)},
		{ID: "junction", Name: "Junction", Geometry: geometry.Point(0, 0.001)},
		{ID: "library", Name: "Library", IsDestination: true, Geometry: geometry.Point(0.001, 0.001)},
	}, nil
}

func (staticSource) LoadSegments(ctx context.Context) ([]domain.Segment, error) {
	return []domain.Segment{
		{ID: "r1", From: "gate", To: "junction", Type: domain.RoadTypeMain,
			Geometry: geometry.Line([2]float64{0, 0}, [2]float64{0, 0.001})},
		{ID: "r2", From: "junction", To: "library", Type: domain.RoadTypePath,
			Geometry: geometry.Line([2]float64{0, 0.001}, [2]float64{0.001, 0.001})},
	}, nil
}

func newGraph(t *testing.T, load bool) *usecase.GraphUseCase {
	t.Helper()

	graph := usecase.NewGraphUseCase(staticSource{}, roadgraph.NewStore(), domain.DefaultWalkingSpeed, 20*time.Millisecond, zap.NewNop())
	if load {
		_, err := graph.Load(context.Background())
		require.NoError(t, err)
	}
	return graph
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
