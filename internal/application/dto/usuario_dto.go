package dto

import (
	"time"

	"github.com/grxsoft/crm-api/internal/domain/entity"
)

// CreateUsuarioRequest entrada para crear un usuario (password en texto,
// se hashea con bcrypt en el use case, nunca se persiste plano).
type CreateUsuarioRequest struct {
	Nombre    string                `json:"nombre"`
	Email     string                `json:"email"`
	Telefono  string                `json:"telefono"`
	Password  string                `json:"password"`
	Rol       string                `json:"rol"`
	EmpresaID *string               `json:"empresa_id"`
	EquipoID  *string               `json:"equipo_id"`
	Permisos  entity.MatrizPermisos `json:"permisos"`
}

// UpdateUsuarioRequest actualización parcial: solo los campos presentes se
// aplican sobre el usuario existente.
type UpdateUsuarioRequest struct {
	Nombre   *string                `json:"nombre"`
	Telefono *string                `json:"telefono"`
	Rol      *string                `json:"rol"`
	Activo   *bool                  `json:"activo"`
	Permisos *entity.MatrizPermisos `json:"permisos"`
}

// UsuarioResponse salida de un usuario (sin hash de password).
type UsuarioResponse struct {
	ID        string                `json:"id"`
	Nombre    string                `json:"nombre"`
	Email     string                `json:"email"`
	Telefono  string                `json:"telefono"`
	Rol       string                `json:"rol"`
	EmpresaID *string               `json:"empresa_id,omitempty"`
	EquipoID  *string               `json:"equipo_id,omitempty"`
	Activo    bool                  `json:"activo"`
	Permisos  entity.MatrizPermisos `json:"permisos"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LoginRequest entrada para login delegado al proveedor de identidad.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
