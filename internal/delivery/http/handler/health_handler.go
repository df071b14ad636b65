package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/usecase"
)

// HealthChecker - внешняя зависимость с проверкой доступности
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка состояния сервиса
type HealthHandler struct {
	graphUC  *usecase.GraphUseCase
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler. checkers может быть пустым
func NewHealthHandler(graphUC *usecase.GraphUseCase, checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		graphUC:  graphUC,
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Description healthy - граф загружен и зависимости доступны, degraded - недоступна зависимость, starting - граф ещё не загружен
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "down"
			status = "degraded"
			continue
		}
		deps[name] = "up"
	}

	ready := h.graphUC.Ready()
	code := fiber.StatusOK
	if !ready {
		status = "starting"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"graph_ready":  ready,
		"dependencies": deps,
		"time":         time.Now(),
	})
}
