package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
)

// NotificacionHandler maneja las notificaciones del usuario autenticado.
type NotificacionHandler struct {
	uc *usecase.NotificacionUseCase
}

// NewNotificacionHandler construye el handler.
func NewNotificacionHandler(uc *usecase.NotificacionUseCase) *NotificacionHandler {
	return &NotificacionHandler{uc: uc}
}

// Create POST /api/notificaciones
func (h *NotificacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/notificaciones (solo las del actor)
func (h *NotificacionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.ListMine(GetActor(c), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// MarcarLeida POST /api/notificaciones/:id/leida
func (h *NotificacionHandler) MarcarLeida(c *fiber.Ctx) error {
	if err := h.uc.MarcarLeida(GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/notificaciones/:id
func (h *NotificacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
