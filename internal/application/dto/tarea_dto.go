package dto

import "time"

// CreateTareaRequest entrada para crear una tarea.
type CreateTareaRequest struct {
	UsuarioID        string     `json:"usuario_id"`
	Titulo           string     `json:"titulo"`
	Descripcion      string     `json:"descripcion"`
	Estado           string     `json:"estado"`
	Prioridad        string     `json:"prioridad"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento"`
}

// UpdateTareaRequest actualización parcial de una tarea.
type UpdateTareaRequest struct {
	UsuarioID        *string    `json:"usuario_id"`
	Titulo           *string    `json:"titulo"`
	Descripcion      *string    `json:"descripcion"`
	Estado           *string    `json:"estado"`
	Prioridad        *string    `json:"prioridad"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento"`
}

// TareaResponse salida de una tarea.
type TareaResponse struct {
	ID               string     `json:"id"`
	EmpresaID        string     `json:"empresa_id"`
	UsuarioID        string     `json:"usuario_id"`
	Titulo           string     `json:"titulo"`
	Descripcion      string     `json:"descripcion"`
	Estado           string     `json:"estado"`
	Prioridad        string     `json:"prioridad"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TareaListResponse lista paginada de tareas.
type TareaListResponse struct {
	Items []TareaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
