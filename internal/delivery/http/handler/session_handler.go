package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/usecase/dto"
)

// SessionHandler - навигационные сессии посетителей
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Start navigation session
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	result := h.sessionUC.Create(c.Context())
	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Get session state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	result, err := h.sessionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// SelectDestination godoc
// @Summary Select destination
// @Description Выбор пункта назначения. Маршрут строится от текущего положения или от узла по умолчанию
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SelectDestinationRequest true "Destination"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/destination [post]
func (h *SessionHandler) SelectDestination(c *fiber.Ctx) error {
	var req dto.SelectDestinationRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.SelectDestination(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// SetLocation godoc
// @Summary Set current node
// @Description Явно задаёт текущий узел посетителя, например узел киоска
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.LocationRequest true "Location"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/location [post]
func (h *SessionHandler) SetLocation(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.SetLocation(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ObservePosition godoc
// @Summary Report GPS position
// @Description GPS-координаты привязываются к ближайшему узлу. Частые обновления игнорируются
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.PositionRequest true "Position"
// @Success 200 {object} utils.SuccessResponse{data=dto.PositionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/position [post]
func (h *SessionHandler) ObservePosition(c *fiber.Ctx) error {
	var req dto.PositionRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.ObservePosition(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ClearRoute godoc
// @Summary Clear route
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/route [delete]
func (h *SessionHandler) ClearRoute(c *fiber.Ctx) error {
	result, err := h.sessionUC.ClearRoute(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
