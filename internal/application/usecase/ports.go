package usecase

import (
	"context"

	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/internal/infrastructure/export"
)

// AlmacenAdjuntos es el puerto hacia el object storage de binarios.
// Lo implementa storage.S3Store.
type AlmacenAdjuntos interface {
	Put(ctx context.Context, nombre, contentType string, data []byte) (key, publicURL string, err error)
	Delete(ctx context.Context, key string) error
}

// ExportadorHojas es el puerto hacia el serializador de hojas de cálculo.
// Lo implementa export.ExcelExporter.
type ExportadorHojas interface {
	Generar(h export.Hoja) ([]byte, error)
}

// GeneradorResumenPDF es el puerto hacia el generador del resumen PDF.
// Lo implementa pdf.MarotoReporteGenerator.
type GeneradorResumenPDF interface {
	GenerarResumen(
		ctx context.Context,
		empresaNombre string,
		etapas []repository.EtapaPipelineResult,
		conteos []repository.ConteoColeccion,
	) ([]byte, error)
}
