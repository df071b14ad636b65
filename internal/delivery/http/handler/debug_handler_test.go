package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/delivery/http/handler"
	"github.com/campus-navigator/internal/pkg/logger"
	"github.com/campus-navigator/internal/usecase/dto"
)

func TestDebugHandler_Log(t *testing.T) {
	ring := logger.NewRing(2)
	log, err := logger.New("info", ring)
	require.NoError(t, err)

	log.Info("first")
	log.Info("second")
	log.Info("third")

	app := fiber.New()
	app.Get("/debug/log", handler.NewDebugHandler(ring).Log)

	status, env := doRequest(t, app, http.MethodGet, "/debug/log", nil)

	require.Equal(t, http.StatusOK, status)
	var resp dto.DebugLogResponse
	decodeData(t, env, &resp)
	assert.Equal(t, 2, resp.Capacity)
	require.Len(t, resp.Lines, 2)
	assert.Contains(t, resp.Lines[0], "second")
	assert.Contains(t, resp.Lines[1], "third")
}

func TestDebugHandler_NoRing(t *testing.T) {
	app := fiber.New()
	app.Get("/debug/log", handler.NewDebugHandler(nil).Log)

	status, env := doRequest(t, app, http.MethodGet, "/debug/log", nil)

	require.Equal(t, http.StatusOK, status)
	var resp dto.DebugLogResponse
	decodeData(t, env, &resp)
	assert.Empty(t, resp.Lines)
}

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	ok := checkerFunc(func(context.Context) error { return nil })
	down := checkerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		loaded     bool
		checkers   map[string]handler.HealthChecker
		wantStatus int
		wantState  string
	}{
		{name: "healthy", loaded: true, checkers: map[string]handler.HealthChecker{"redis": ok}, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "degraded", loaded: true, checkers: map[string]handler.HealthChecker{"redis": down}, wantStatus: http.StatusOK, wantState: "degraded"},
		{name: "starting", loaded: false, wantStatus: http.StatusServiceUnavailable, wantState: "starting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(newGraph(t, tt.loaded), tt.checkers, zap.NewNop()).Health)

			req, err := http.NewRequest(http.MethodGet, "/health", nil)
			require.NoError(t, err)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]any
			require.NoError(t, decodeJSON(resp, &body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
