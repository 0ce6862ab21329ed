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
)

func metricasFixture() *fakeMetricasRepo {
	return &fakeMetricasRepo{
		conteos: []repository.ConteoColeccion{
			{Coleccion: "usuarios", Total: 3},
			{Coleccion: "clientes", Total: 12},
			{Coleccion: "notificaciones", Total: 0},
		},
		pipeline: []repository.EtapaPipelineResult{
			{Etapa: entity.EtapaProspecto, Cantidad: 4, ValorTotal: valor("1200.50")},
			{Etapa: entity.EtapaGanada, Cantidad: 1, ValorTotal: valor("9800")},
		},
	}
}

// Caso 1: el dashboard exige reportes.ver.
func TestDashboard_RequiereReportesVer(t *testing.T) {
	uc := usecase.NewMetricasUseCase(metricasFixture())

	sinReportes := actorCon(entity.MatrizPermisos{
		entity.RecursoClientes: {Ver: entity.Flag(true)},
	})
	_, err := uc.Dashboard(context.Background(), sinReportes)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

// Caso 2: el dashboard arma conteos y pipeline.
func TestDashboard_ConteosYPipeline(t *testing.T) {
	uc := usecase.NewMetricasUseCase(metricasFixture())

	out, err := uc.Dashboard(context.Background(), actorAdmin())
	require.NoError(t, err)

	require.Len(t, out.Conteos, 3)
	assert.True(t, out.Conteos[1].TieneDatos)
	assert.False(t, out.Conteos[2].TieneDatos, "cero documentos marca la colección sin datos")

	require.Len(t, out.Pipeline, 2)
	assert.Equal(t, entity.EtapaGanada, out.Pipeline[1].Etapa)
	assert.True(t, out.Pipeline[1].ValorTotal.Equal(valor("9800")))
}

// Caso 3: la verificación para scripts no lleva actor ni filtro de empresa.
func TestVerificarColecciones(t *testing.T) {
	uc := usecase.NewMetricasUseCase(metricasFixture())

	conteos, err := uc.VerificarColecciones(context.Background())
	require.NoError(t, err)
	require.Len(t, conteos, 3)
	assert.Equal(t, int64(12), conteos[1].Total)
	assert.False(t, conteos[2].TieneDatos)
}
