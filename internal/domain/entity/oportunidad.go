package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de ventas.
const (
	EtapaProspecto   = "prospecto"
	EtapaCalificada  = "calificada"
	EtapaPropuesta   = "propuesta"
	EtapaNegociacion = "negociacion"
	EtapaGanada      = "ganada"
	EtapaPerdida     = "perdida"
)

// Etapas lista las etapas en orden de avance del pipeline.
var Etapas = []string{
	EtapaProspecto, EtapaCalificada, EtapaPropuesta,
	EtapaNegociacion, EtapaGanada, EtapaPerdida,
}

// Oportunidad representa una oportunidad de venta en el pipeline.
// Valor usa NUMERIC en DB (codec shopspring/decimal registrado en el pool).
type Oportunidad struct {
	ID           string
	EmpresaID    string
	ClienteID    string
	Nombre       string
	Etapa        string // ver constantes Etapa*
	Valor        decimal.Decimal
	Probabilidad int // 0..100
	FechaCierre  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EtapaValida verifica que la etapa pertenezca al pipeline.
func EtapaValida(etapa string) bool {
	for _, e := range Etapas {
		if e == etapa {
			return true
		}
	}
	return false
}
