package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "administrador"
	RolEstandar      = "estandar"
)

// Usuario representa una persona que puede iniciar sesión. El email lo
// identifica de forma única en todo el almacén (índice único en usuarios).
type Usuario struct {
	ID           string
	Nombre       string
	Email        string
	Telefono     string // opcional
	Rol          string // administrador, estandar
	EmpresaID    *string
	EquipoID     *string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Activo       bool
	Permisos     MatrizPermisos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Puede consulta la matriz de permisos del usuario para (recurso, acción).
func (u *Usuario) Puede(recurso, accion string) bool {
	return u.Permisos.Permite(recurso, accion)
}
