package dto

import "github.com/shopspring/decimal"

// ConteoColeccionDTO conteo de una colección para el dashboard/verificación.
type ConteoColeccionDTO struct {
	Coleccion  string `json:"coleccion"`
	Total      int64  `json:"total"`
	TieneDatos bool   `json:"tiene_datos"`
}

// EtapaPipelineDTO agregado del pipeline para los gráficos del shell.
type EtapaPipelineDTO struct {
	Etapa      string          `json:"etapa"`
	Cantidad   int64           `json:"cantidad"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// DashboardResponse métricas del dashboard de una empresa.
type DashboardResponse struct {
	Conteos  []ConteoColeccionDTO `json:"conteos"`
	Pipeline []EtapaPipelineDTO   `json:"pipeline"`
}
