package entity

import "time"

// Cliente representa un cliente del CRM (scoped a una empresa).
type Cliente struct {
	ID        string
	EmpresaID string
	Nombre    string
	Email     string
	Telefono  string
	Ciudad    string
	Notas     string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
