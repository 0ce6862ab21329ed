package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOportunidadRequest entrada para crear una oportunidad.
type CreateOportunidadRequest struct {
	ClienteID    string          `json:"cliente_id"`
	Nombre       string          `json:"nombre"`
	Etapa        string          `json:"etapa"`
	Valor        decimal.Decimal `json:"valor"`
	Probabilidad int             `json:"probabilidad"`
	FechaCierre  *time.Time      `json:"fecha_cierre"`
}

// UpdateOportunidadRequest actualización parcial de una oportunidad.
type UpdateOportunidadRequest struct {
	Nombre       *string          `json:"nombre"`
	Etapa        *string          `json:"etapa"`
	Valor        *decimal.Decimal `json:"valor"`
	Probabilidad *int             `json:"probabilidad"`
	FechaCierre  *time.Time       `json:"fecha_cierre"`
}

// OportunidadResponse salida de una oportunidad.
type OportunidadResponse struct {
	ID           string          `json:"id"`
	EmpresaID    string          `json:"empresa_id"`
	ClienteID    string          `json:"cliente_id"`
	Nombre       string          `json:"nombre"`
	Etapa        string          `json:"etapa"`
	Valor        decimal.Decimal `json:"valor"`
	Probabilidad int             `json:"probabilidad"`
	FechaCierre  *time.Time      `json:"fecha_cierre,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OportunidadListResponse lista paginada de oportunidades.
type OportunidadListResponse struct {
	Items []OportunidadResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
