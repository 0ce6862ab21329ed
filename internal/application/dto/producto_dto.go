package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre      string          `json:"nombre"`
	SKU         string          `json:"sku"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
}

// UpdateProductoRequest actualización parcial de un producto.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	SKU         *string          `json:"sku"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Activo      *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	Nombre      string          `json:"nombre"`
	SKU         string          `json:"sku"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
