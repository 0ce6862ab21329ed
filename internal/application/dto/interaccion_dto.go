package dto

import "time"

// CreateInteraccionRequest entrada para registrar una interacción. El
// adjunto (si existe) viaja como multipart y lo procesa el handler; aquí
// solo llegan los metadatos.
type CreateInteraccionRequest struct {
	ClienteID string     `json:"cliente_id"`
	Tipo      string     `json:"tipo"`
	Notas     string     `json:"notas"`
	Fecha     *time.Time `json:"fecha"`
}

// UpdateInteraccionRequest actualización parcial de una interacción.
type UpdateInteraccionRequest struct {
	Tipo  *string    `json:"tipo"`
	Notas *string    `json:"notas"`
	Fecha *time.Time `json:"fecha"`
}

// InteraccionResponse salida de una interacción.
type InteraccionResponse struct {
	ID         string    `json:"id"`
	EmpresaID  string    `json:"empresa_id"`
	ClienteID  string    `json:"cliente_id"`
	UsuarioID  string    `json:"usuario_id"`
	Tipo       string    `json:"tipo"`
	Notas      string    `json:"notas"`
	Fecha      time.Time `json:"fecha"`
	AdjuntoURL string    `json:"adjunto_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InteraccionListResponse lista paginada de interacciones.
type InteraccionListResponse struct {
	Items []InteraccionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
