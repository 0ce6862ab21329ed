package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
)

// OportunidadHandler maneja las peticiones HTTP del pipeline (protegido).
type OportunidadHandler struct {
	uc *usecase.OportunidadUseCase
}

// NewOportunidadHandler construye el handler.
func NewOportunidadHandler(uc *usecase.OportunidadUseCase) *OportunidadHandler {
	return &OportunidadHandler{uc: uc}
}

// Create POST /api/oportunidades
func (h *OportunidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOportunidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/oportunidades/:id
func (h *OportunidadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oportunidad no encontrada"})
	}
	return c.JSON(out)
}

// List GET /api/oportunidades?limit=20&offset=0
func (h *OportunidadHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(GetActor(c), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/oportunidades/:id (actualización parcial)
func (h *OportunidadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOportunidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/oportunidades/:id
func (h *OportunidadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
