package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase"
)

// GraphHandler - статистика и перезагрузка графа дорог
type GraphHandler struct {
	graphUC *usecase.GraphUseCase
	logger  *zap.Logger
}

// NewGraphHandler - создание нового GraphHandler
func NewGraphHandler(graphUC *usecase.GraphUseCase, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		graphUC: graphUC,
		logger:  logger,
	}
}

// Stats godoc
// @Summary Road graph statistics
// @Description Возвращает статистику текущего графа дорог: вершины, рёбра, пропущенные объекты, охват
// @Tags Graph
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.GraphStats}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/graph/stats [get]
func (h *GraphHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.graphUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{GraphVersion: stats.Version})
}

// Reload godoc
// @Summary Reload road graph
// @Description Перечитывает узлы и дороги из источника и публикует новый граф. При ошибке остаётся предыдущий граф
// @Tags Graph
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.GraphStats}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/graph/reload [post]
func (h *GraphHandler) Reload(c *fiber.Ctx) error {
	h.logger.Info("Road graph reload requested", zap.String("ip", c.IP()))

	stats, err := h.graphUC.Load(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{GraphVersion: stats.Version})
}
