package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto o servicio del catálogo de la empresa.
type Producto struct {
	ID          string
	EmpresaID   string
	Nombre      string
	SKU         string
	Descripcion string
	Precio      decimal.Decimal
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
