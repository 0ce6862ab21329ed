package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/usecase"
)

// DashboardHandler expone las métricas agregadas de la empresa.
type DashboardHandler struct {
	uc *usecase.MetricasUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.MetricasUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Métricas del dashboard (conteos + pipeline)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetActor(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
