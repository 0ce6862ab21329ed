package entity

import "time"

// Estados válidos para Proyecto.
const (
	ProyectoActivo     = "activo"
	ProyectoPausado    = "pausado"
	ProyectoFinalizado = "finalizado"
)

// Proyecto representa un proyecto asociado a un cliente de la empresa.
type Proyecto struct {
	ID          string
	EmpresaID   string
	ClienteID   string
	Nombre      string
	Descripcion string
	Estado      string // ver constantes Proyecto*
	FechaInicio *time.Time
	FechaFin    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
