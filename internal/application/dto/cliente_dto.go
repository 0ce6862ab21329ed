package dto

import "time"

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Ciudad   string `json:"ciudad"`
	Notas    string `json:"notas"`
}

// UpdateClienteRequest actualización parcial de un cliente.
type UpdateClienteRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	Ciudad   *string `json:"ciudad"`
	Notas    *string `json:"notas"`
	Activo   *bool   `json:"activo"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Ciudad    string    `json:"ciudad"`
	Notas     string    `json:"notas"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
