package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/delivery/http/handler"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/usecase/dto"
)

func newRouteApp(t *testing.T) *fiber.App {
	t.Helper()

	routeUC := usecase.NewRouteUseCase(newGraph(t, true), nil, nil, 0, usecase.ShareConfig{
		BaseURL:     "https://map.campus.example",
		DefaultNode: "library",
	}, zap.NewNop())
	h := handler.NewRouteHandler(routeUC, zap.NewNop())

	app := fiber.New()
	app.Post("/routes", h.FindRoute)
	app.Get("/routes/link", h.RouteFromLink)
	app.Post("/routes/share", h.ShareLink)
	return app
}

func TestRouteHandler_FindRoute(t *testing.T) {
	app := newRouteApp(t)

	t.Run("success", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodPost, "/routes", dto.RouteRequest{StartNodeID: "gate", EndNodeID: "library"})

		require.Equal(t, http.StatusOK, status)
		var resp dto.RouteResponse
		decodeData(t, env, &resp)
		assert.Equal(t, []string{"gate", "junction", "library"}, resp.Route.NodePath)
		assert.InDelta(t, 222.6, resp.Route.Distance, 0.1)
		assert.Equal(t, float64(2), env.Meta["total"])
		assert.NotEmpty(t, env.Meta["graph_version"])
	})

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "invalid json", body: "not an object", wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "missing end", body: map[string]string{"start_node_id": "gate"}, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "unknown node", body: dto.RouteRequest{StartNodeID: "gate", EndNodeID: "pool"}, wantStatus: http.StatusNotFound, wantCode: "NODE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, http.MethodPost, "/routes", tt.body)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}

	t.Run("validation details name the field", func(t *testing.T) {
		_, env := doRequest(t, app, http.MethodPost, "/routes", map[string]string{"start_node_id": "gate"})

		require.NotNil(t, env.Error)
		assert.Equal(t, "required", env.Error.Details["end_node_id"])
	})
}

func TestRouteHandler_Links(t *testing.T) {
	app := newRouteApp(t)

	t.Run("route from link", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/routes/link?startNode=GATE&distance=222&time=2.7&desc=Library", nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.RouteResponse
		decodeData(t, env, &resp)
		assert.Equal(t, "library", resp.Route.EndNodeID)
		require.NotNil(t, resp.RouteInfo)
		assert.Equal(t, "Library", resp.RouteInfo.Description)
	})

	t.Run("link without start", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/routes/link?endNode=library", nil)

		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_SHARE_LINK", env.Error.Code)
	})

	t.Run("share link", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodPost, "/routes/share", dto.ShareLinkRequest{StartNodeID: "gate", EndNodeID: "junction"})

		require.Equal(t, http.StatusOK, status)
		var resp dto.ShareLinkResponse
		decodeData(t, env, &resp)

		u, err := url.Parse(resp.URL)
		require.NoError(t, err)
		assert.Equal(t, "gate", u.Query().Get("startNode"))
		assert.Equal(t, "junction", u.Query().Get("endNode"))
		assert.Equal(t, "111.3", u.Query().Get("distance"))
	})
}
