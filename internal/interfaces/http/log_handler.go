package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/usecase"
)

// LogHandler consulta de auditoría (admin-only).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Últimos 100 registros de auditoría
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LogEntryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRecent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
