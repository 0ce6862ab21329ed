// Package export genera archivos descargables a partir de listados de
// entidades (una hoja, una fila por entidad).
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Hoja es un listado tabular listo para exportar: encabezados + una fila
// por entidad. Los use cases producen Hoja; este paquete solo la serializa.
type Hoja struct {
	Nombre      string
	Encabezados []string
	Filas       [][]any
}

// ExcelExporter serializa una Hoja como libro .xlsx de una sola hoja.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// Generar produce los bytes del .xlsx. Un listado vacío genera un libro
// válido con solo la fila de encabezados.
func (e *ExcelExporter) Generar(h Hoja) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	nombre := h.Nombre
	if nombre == "" {
		nombre = "Datos"
	}
	if err := f.SetSheetName(defaultSheet, nombre); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	encabezados := make([]any, len(h.Encabezados))
	for i, c := range h.Encabezados {
		encabezados[i] = c
	}
	if err := setFila(f, nombre, 1, encabezados); err != nil {
		return nil, err
	}

	estilo, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(h.Encabezados) > 0 {
		fin, _ := excelize.CoordinatesToCellName(len(h.Encabezados), 1)
		_ = f.SetCellStyle(nombre, "A1", fin, estilo)
	}

	for i, fila := range h.Filas {
		if err := setFila(f, nombre, i+2, fila); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setFila(f *excelize.File, hoja string, numFila int, valores []any) error {
	celda, err := excelize.CoordinatesToCellName(1, numFila)
	if err != nil {
		return fmt.Errorf("celda fila %d: %w", numFila, err)
	}
	if err := f.SetSheetRow(hoja, celda, &valores); err != nil {
		return fmt.Errorf("escribir fila %d: %w", numFila, err)
	}
	return nil
}
