package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/grxsoft/crm-api/internal/infrastructure/export"
)

// El .xlsx generado debe poder reabrirse y contener encabezados + filas.
func TestExcelExporter_Generar(t *testing.T) {
	exp := export.NewExcelExporter()

	data, err := exp.Generar(export.Hoja{
		Nombre:      "Clientes",
		Encabezados: []string{"ID", "Nombre", "Activo"},
		Filas: [][]any{
			{"c1", "ACME", true},
			{"c2", "José Rodríguez", false},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Clientes"}, f.GetSheetList())

	rows, err := f.GetRows("Clientes")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Nombre", "Activo"}, rows[0])
	assert.Equal(t, "José Rodríguez", rows[2][1])
}

// Un listado vacío produce un libro válido con solo la fila de encabezados.
func TestExcelExporter_ListadoVacio(t *testing.T) {
	exp := export.NewExcelExporter()

	data, err := exp.Generar(export.Hoja{
		Nombre:      "Tareas",
		Encabezados: []string{"ID", "Título"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tareas")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
