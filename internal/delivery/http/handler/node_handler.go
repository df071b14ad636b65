package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/usecase/dto"
)

// NodeHandler - поиск узлов карты кампуса
type NodeHandler struct {
	nodeUC *usecase.NodeUseCase
	logger *zap.Logger
}

// NewNodeHandler - создание нового NodeHandler
func NewNodeHandler(nodeUC *usecase.NodeUseCase, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		nodeUC: nodeUC,
		logger: logger,
	}
}

// Destinations godoc
// @Summary List destinations
// @Description Пункты назначения, которые посетитель может выбрать, в порядке загрузки
// @Tags Nodes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.NodeListResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/nodes/destinations [get]
func (h *NodeHandler) Destinations(c *fiber.Ctx) error {
	result, err := h.nodeUC.Destinations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Nearest godoc
// @Summary Nearest node
// @Description Ближайший к точке узел графа, пригодный как начало или конец маршрута
// @Tags Nodes
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearestNodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/nodes/nearest [get]
func (h *NodeHandler) Nearest(c *fiber.Ctx) error {
	var q dto.PointQuery
	if err := parseQuery(c, &q, "lat", "lon"); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.nodeUC.Nearest(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Nearby godoc
// @Summary Nodes within radius
// @Description Узлы в радиусе от точки, ближайшие первыми
// @Tags Nodes
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_m query number true "Radius in meters (1-5000)"
// @Param destinations_only query bool false "Only destinations"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyNodesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/nodes/nearby [get]
func (h *NodeHandler) Nearby(c *fiber.Ctx) error {
	var q dto.NearbyQuery
	if err := parseQuery(c, &q, "lat", "lon", "radius_m"); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.nodeUC.Nearby(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
