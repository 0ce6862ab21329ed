package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
)

// TareaHandler maneja las peticiones HTTP de tareas (protegido).
type TareaHandler struct {
	uc *usecase.TareaUseCase
}

// NewTareaHandler construye el handler.
func NewTareaHandler(uc *usecase.TareaUseCase) *TareaHandler {
	return &TareaHandler{uc: uc}
}

// Create POST /api/tareas
func (h *TareaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/tareas/:id
func (h *TareaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(out)
}

// List GET /api/tareas?mias=true&limit=20&offset=0
func (h *TareaHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if c.QueryBool("mias") {
		out, err := h.uc.ListMine(GetActor(c), limit, offset)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(GetActor(c), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/tareas/:id (actualización parcial)
func (h *TareaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/tareas/:id
func (h *TareaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
