package dto

import "time"

// CreateProyectoRequest entrada para crear un proyecto.
type CreateProyectoRequest struct {
	ClienteID   string     `json:"cliente_id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Estado      string     `json:"estado"`
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
}

// UpdateProyectoRequest actualización parcial de un proyecto.
type UpdateProyectoRequest struct {
	Nombre      *string    `json:"nombre"`
	Descripcion *string    `json:"descripcion"`
	Estado      *string    `json:"estado"`
	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFin    *time.Time `json:"fecha_fin"`
}

// ProyectoResponse salida de un proyecto.
type ProyectoResponse struct {
	ID          string     `json:"id"`
	EmpresaID   string     `json:"empresa_id"`
	ClienteID   string     `json:"cliente_id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Estado      string     `json:"estado"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProyectoListResponse lista paginada de proyectos.
type ProyectoListResponse struct {
	Items []ProyectoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
