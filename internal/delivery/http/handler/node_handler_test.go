package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/delivery/http/handler"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/usecase/dto"
)

func newNodeApp(t *testing.T, loaded bool) *fiber.App {
	t.Helper()

	graph := newGraph(t, loaded)
	nodes := handler.NewNodeHandler(usecase.NewNodeUseCase(graph, zap.NewNop()), zap.NewNop())
	graphs := handler.NewGraphHandler(graph, zap.NewNop())

	app := fiber.New()
	app.Get("/nodes/destinations", nodes.Destinations)
	app.Get("/nodes/nearest", nodes.Nearest)
	app.Get("/nodes/nearby", nodes.Nearby)
	app.Get("/graph/stats", graphs.Stats)
	app.Post("/graph/reload", graphs.Reload)
	return app
}

func TestNodeHandler(t *testing.T) {
	app := newNodeApp(t, true)

	t.Run("destinations", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/nodes/destinations", nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.NodeListResponse
		decodeData(t, env, &resp)
		require.Len(t, resp.Nodes, 1)
		assert.Equal(t, "library", resp.Nodes[0].ID)
	})

	t.Run("nearest", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/nodes/nearest?lat=0.0009&lon=0.0001", nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.NearestNodeResponse
		decodeData(t, env, &resp)
		assert.Equal(t, "junction", resp.Node.ID)
	})

	t.Run("nearest without lon", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/nodes/nearest?lat=0.0009", nil)

		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "required", env.Error.Details["lon"])
	})

	t.Run("nearby", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/nodes/nearby?lat=0&lon=0&radius_m=150", nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.NearbyNodesResponse
		decodeData(t, env, &resp)
		require.Len(t, resp.Nodes, 2)
		assert.Equal(t, "gate", resp.Nodes[0].Node.ID)
		assert.Equal(t, float64(2), env.Meta["total"])
	})

	t.Run("nearby radius too large", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodGet, "/nodes/nearby?lat=0&lon=0&radius_m=9000", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGraphHandler(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		app := newNodeApp(t, false)

		status, env := doRequest(t, app, http.MethodGet, "/graph/stats", nil)

		assert.Equal(t, http.StatusServiceUnavailable, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "GRAPH_NOT_READY", env.Error.Code)
	})

	t.Run("reload then stats", func(t *testing.T) {
		app := newNodeApp(t, false)

		status, _ := doRequest(t, app, http.MethodPost, "/graph/reload", nil)
		require.Equal(t, http.StatusOK, status)

		status, env := doRequest(t, app, http.MethodGet, "/graph/stats", nil)
		require.Equal(t, http.StatusOK, status)

		var stats map[string]any
		decodeData(t, env, &stats)
		assert.Equal(t, float64(3), stats["vertices"])
		assert.Equal(t, "static", stats["source"])
		assert.Equal(t, stats["version"], env.Meta["graph_version"])
	})
}
