package dto

import "time"

// CreateNotificacionRequest entrada para crear una notificación.
type CreateNotificacionRequest struct {
	UsuarioID string `json:"usuario_id"`
	Titulo    string `json:"titulo"`
	Mensaje   string `json:"mensaje"`
}

// NotificacionResponse salida de una notificación.
type NotificacionResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	UsuarioID string    `json:"usuario_id"`
	Titulo    string    `json:"titulo"`
	Mensaje   string    `json:"mensaje"`
	Leida     bool      `json:"leida"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificacionListResponse lista paginada de notificaciones.
type NotificacionListResponse struct {
	Items []NotificacionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
