package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-navigator/internal/pkg/logger"
	"github.com/campus-navigator/internal/pkg/utils"
	"github.com/campus-navigator/internal/usecase/dto"
)

// DebugHandler - последние строки лога для отладочной панели
type DebugHandler struct {
	ring *logger.Ring
}

// NewDebugHandler - создание нового DebugHandler. ring может быть nil
func NewDebugHandler(ring *logger.Ring) *DebugHandler {
	return &DebugHandler{ring: ring}
}

// Log godoc
// @Summary Recent log lines
// @Description Последние строки лога, старые первыми
// @Tags Debug
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DebugLogResponse}
// @Router /api/v1/debug/log [get]
func (h *DebugHandler) Log(c *fiber.Ctx) error {
	resp := dto.DebugLogResponse{Lines: []string{}}
	if h.ring != nil {
		resp.Lines = h.ring.Lines()
		resp.Capacity = h.ring.Capacity()
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Lines)})
}
