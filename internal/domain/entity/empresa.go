package entity

import "time"

// Empresa representa una organización/tenant del sistema. Toda entidad del
// CRM salvo Usuario pertenece exactamente a una empresa (frontera multi-tenant).
type Empresa struct {
	ID        string
	Nombre    string
	NIT       string
	Direccion string
	Telefono  string
	Email     string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
