package http

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
)

// Tope del adjunto de una interacción (10 MB).
const maxAdjuntoBytes = 10 << 20

// InteraccionHandler maneja las peticiones HTTP de interacciones (protegido).
// Create acepta JSON plano o multipart/form-data cuando la interacción trae
// un adjunto.
type InteraccionHandler struct {
	uc *usecase.InteraccionUseCase
}

// NewInteraccionHandler construye el handler.
func NewInteraccionHandler(uc *usecase.InteraccionUseCase) *InteraccionHandler {
	return &InteraccionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar interacción (con adjunto opcional)
// @Tags         interacciones
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.InteraccionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/interacciones [post]
func (h *InteraccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInteraccionRequest
	var adjunto *usecase.AdjuntoEntrada

	if form, err := c.MultipartForm(); err == nil && form != nil {
		in.ClienteID = formValor(form.Value, "cliente_id")
		in.Tipo = formValor(form.Value, "tipo")
		in.Notas = formValor(form.Value, "notas")
		if f := formValor(form.Value, "fecha"); f != "" {
			t, err := time.Parse(time.RFC3339, f)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha debe ser RFC3339"})
			}
			in.Fecha = &t
		}
		if files := form.File["adjunto"]; len(files) > 0 {
			fh := files[0]
			if fh.Size > maxAdjuntoBytes {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "adjunto supera el tamaño máximo"})
			}
			src, err := fh.Open()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "adjunto ilegible"})
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "adjunto ilegible"})
			}
			adjunto = &usecase.AdjuntoEntrada{
				Nombre:      fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			}
		}
	} else if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Create(c.Context(), GetActor(c), in, adjunto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/interacciones/:id
func (h *InteraccionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "interacción no encontrada"})
	}
	return c.JSON(out)
}

// List GET /api/interacciones?cliente_id=&limit=20&offset=0
func (h *InteraccionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		out, err := h.uc.ListByCliente(GetActor(c), clienteID, limit, offset)
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

// Update PUT /api/interacciones/:id (actualización parcial, sin adjunto)
func (h *InteraccionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInteraccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/interacciones/:id (elimina también el adjunto)
func (h *InteraccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func formValor(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
