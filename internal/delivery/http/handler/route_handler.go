package handler

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/usecase/dto"
)

// RouteHandler - построение маршрутов и ссылки для телефона
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// FindRoute godoc
// @Summary Shortest walking route
// @Description Кратчайший пешеходный маршрут между двумя узлами с расстоянием и временем в пути
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Route request"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) FindRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	started := time.Now()
	result, err := h.routeUC.FindRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, routeMeta(result, started))
}

// RouteFromLink godoc
// @Summary Route from share link
// @Description Разбирает параметры ссылки с киоска и строит маршрут. Без endNode используется узел по умолчанию
// @Tags Routes
// @Produce json
// @Param startNode query string true "Start node id"
// @Param endNode query string false "End node id"
// @Param distance query number false "Distance shown on the kiosk, meters"
// @Param time query number false "Estimated time shown on the kiosk, minutes"
// @Param desc query string false "Route description"
// @Param campus query string false "Campus id"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/link [get]
func (h *RouteHandler) RouteFromLink(c *fiber.Ctx) error {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidShareLink)
	}

	started := time.Now()
	result, err := h.routeUC.FindRouteFromLink(c.Context(), values)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, routeMeta(result, started))
}

// ShareLink godoc
// @Summary Build share link
// @Description Формирует ссылку на маршрут для QR-кода на киоске
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.ShareLinkRequest true "Share link request"
// @Success 200 {object} utils.SuccessResponse{data=dto.ShareLinkResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/share [post]
func (h *RouteHandler) ShareLink(c *fiber.Ctx) error {
	var req dto.ShareLinkRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.BuildShareLink(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func routeMeta(result *dto.RouteResponse, started time.Time) *utils.Meta {
	return &utils.Meta{
		Total:        len(result.Route.Segments),
		GraphVersion: result.GraphVersion,
		Cached:       result.Cached,
		TimeMSec:     float64(time.Since(started).Microseconds()) / 1000,
	}
}
