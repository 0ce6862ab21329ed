package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/pkg/jwt"
)

// LocalActor es la key de c.Locals con el *entity.Usuario autenticado.
const LocalActor = "actor"

// AuthMiddleware valida el Bearer Token JWT y carga el usuario actuante
// (con su matriz de permisos) en c.Locals. El token solo identifica: los
// permisos se leen de la DB en cada request para que una revocación
// aplique de inmediato, sin esperar a que expire el token.
func AuthMiddleware(jwtSecret string, usuarios repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		actor, err := usuarios.GetByID(claims.UserID)
		if err != nil {
			return errorJSON(c, err)
		}
		if actor == nil || !actor.Activo {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "usuario inexistente o inactivo"})
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el usuario autenticado del contexto (después del
// middleware de auth). nil si no hay sesión.
func GetActor(c *fiber.Ctx) *entity.Usuario {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.Usuario)
	return u
}
