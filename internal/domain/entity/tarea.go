package entity

import "time"

// Estados y prioridades válidos para Tarea.
const (
	TareaPendiente  = "pendiente"
	TareaEnCurso    = "en_curso"
	TareaCompletada = "completada"

	PrioridadBaja  = "baja"
	PrioridadMedia = "media"
	PrioridadAlta  = "alta"
)

// Tarea representa una tarea asignada a un usuario de la empresa.
type Tarea struct {
	ID               string
	EmpresaID        string
	UsuarioID        string
	Titulo           string
	Descripcion      string
	Estado           string // pendiente, en_curso, completada
	Prioridad        string // baja, media, alta
	FechaVencimiento *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
