package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ConteoColeccion resultado crudo del conteo de documentos de una colección.
// Lo produce la DB; el use case lo convierte en DTO.
type ConteoColeccion struct {
	Coleccion string // nombre de la tabla/colección, ej. "clientes"
	Total     int64
}

// EtapaPipelineResult agregado de oportunidades por etapa del pipeline.
type EtapaPipelineResult struct {
	Etapa      string
	Cantidad   int64
	ValorTotal decimal.Decimal
}

// MetricasRepository define las consultas de lectura para el dashboard y
// para el script de verificación de datos. Las implementaciones son
// read-only (no modifican datos).
type MetricasRepository interface {
	// CountCollections cuenta los documentos de cada colección conocida.
	// Si empresaID no es vacío, las colecciones scoped a empresa se filtran;
	// vacío cuenta todo el almacén (lo usa verifydata).
	CountCollections(ctx context.Context, empresaID string) ([]ConteoColeccion, error)

	// PipelinePorEtapa agrega cantidad y valor de oportunidades por etapa.
	PipelinePorEtapa(ctx context.Context, empresaID string) ([]EtapaPipelineResult, error)
}
