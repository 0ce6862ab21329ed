package dto

import "time"

// CreateEmpresaRequest entrada para crear una empresa.
type CreateEmpresaRequest struct {
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// UpdateEmpresaRequest actualización parcial de una empresa.
type UpdateEmpresaRequest struct {
	Nombre    *string `json:"nombre"`
	NIT       *string `json:"nit"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Activo    *bool   `json:"activo"`
}

// EmpresaResponse salida de una empresa.
type EmpresaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
