package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/internal/infrastructure/export"
)

// fakeHojas captura la hoja generada para inspeccionarla.
type fakeHojas struct {
	ultima export.Hoja
}

func (f *fakeHojas) Generar(h export.Hoja) ([]byte, error) {
	f.ultima = h
	return []byte("xlsx"), nil
}

type fakePDF struct {
	empresa string
}

func (f *fakePDF) GenerarResumen(_ context.Context, empresaNombre string, _ []repository.EtapaPipelineResult, _ []repository.ConteoColeccion) ([]byte, error) {
	f.empresa = empresaNombre
	return []byte("%PDF"), nil
}

type fakeEmpresaRepo struct {
	empresas map[string]*entity.Empresa
}

var _ repository.EmpresaRepository = (*fakeEmpresaRepo)(nil)

func (r *fakeEmpresaRepo) Create(e *entity.Empresa) error { r.empresas[e.ID] = e; return nil }
func (r *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return r.empresas[id], nil
}
func (r *fakeEmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for _, e := range r.empresas {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEmpresaRepo) Update(e *entity.Empresa) error { r.empresas[e.ID] = e; return nil }
func (r *fakeEmpresaRepo) Delete(id string) error         { delete(r.empresas, id); return nil }

func exportFixture() (*usecase.ExportUseCase, *fakeClienteRepo, *fakeHojas, *fakePDF) {
	clientes := newFakeClienteRepo()
	hojas := &fakeHojas{}
	pdf := &fakePDF{}
	empresas := &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{
		empresaA: {ID: empresaA, Nombre: "GRX Soluciones", Activo: true},
	}}
	uc := usecase.NewExportUseCase(usecase.ExportDeps{
		Clientes: clientes,
		Usuarios: newFakeUsuarioRepo(),
		Empresas: empresas,
		Metricas: metricasFixture(),
		Hojas:    hojas,
		PDF:      pdf,
	})
	return uc, clientes, hojas, pdf
}

// Caso 1: exportar clientes produce una hoja con encabezados y una fila por
// cliente de la empresa del actor.
func TestExportar_Clientes(t *testing.T) {
	uc, clientes, hojas, _ := exportFixture()
	sembrarCliente(clientes, "c1", empresaA, "ACME")
	sembrarCliente(clientes, "c2", empresaB, "Ajeno")

	data, nombre, err := uc.Exportar(actorAdmin(), "clientes")
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), data)
	assert.Contains(t, nombre, "clientes-")
	assert.Contains(t, nombre, ".xlsx")

	assert.Equal(t, "Clientes", hojas.ultima.Nombre)
	assert.Contains(t, hojas.ultima.Encabezados, "Nombre")
	require.Len(t, hojas.ultima.Filas, 1, "solo clientes de la empresa del actor")
	assert.Equal(t, "ACME", hojas.ultima.Filas[0][1])
}

// Caso 2: la exportación de una colección exige su permiso ver.
func TestExportar_RequierePermisoVer(t *testing.T) {
	uc, _, _, _ := exportFixture()

	sinClientes := actorCon(entity.MatrizPermisos{
		entity.RecursoTareas: {Ver: entity.Flag(true)},
	})
	_, _, err := uc.Exportar(sinClientes, "clientes")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

// Caso 3: colección desconocida es error de validación.
func TestExportar_ColeccionDesconocida(t *testing.T) {
	uc, _, _, _ := exportFixture()
	_, _, err := uc.Exportar(actorAdmin(), "facturas")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Caso 4: el resumen PDF usa el nombre real de la empresa y exige reportes.ver.
func TestResumenPDF(t *testing.T) {
	uc, _, _, pdf := exportFixture()

	data, nombre, err := uc.ResumenPDF(context.Background(), actorAdmin())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Contains(t, nombre, ".pdf")
	assert.Equal(t, "GRX Soluciones", pdf.empresa)

	sinReportes := actorCon(entity.MatrizPermisos{})
	_, _, err = uc.ResumenPDF(context.Background(), sinReportes)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
