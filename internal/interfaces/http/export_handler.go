package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/usecase"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler expone las descargas: hojas de cálculo por colección y el
// resumen ejecutivo en PDF.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Exportar godoc
// @Summary      Exportar una colección a .xlsx
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        coleccion  path  string  true  "clientes | proyectos | oportunidades | tareas | productos | usuarios | interacciones"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/export/{coleccion} [get]
func (h *ExportHandler) Exportar(c *fiber.Ctx) error {
	data, nombre, err := h.uc.Exportar(GetActor(c), c.Params("coleccion"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}

// ResumenPDF GET /api/reportes/resumen
func (h *ExportHandler) ResumenPDF(c *fiber.Ctx) error {
	data, nombre, err := h.uc.ResumenPDF(c.Context(), GetActor(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}
