package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

type fakeOportunidadRepo struct {
	oportunidades map[string]*entity.Oportunidad
}

var _ repository.OportunidadRepository = (*fakeOportunidadRepo)(nil)

func newFakeOportunidadRepo() *fakeOportunidadRepo {
	return &fakeOportunidadRepo{oportunidades: map[string]*entity.Oportunidad{}}
}

func (r *fakeOportunidadRepo) Create(o *entity.Oportunidad) error {
	cp := *o
	r.oportunidades[o.ID] = &cp
	return nil
}

func (r *fakeOportunidadRepo) GetByID(id string) (*entity.Oportunidad, error) {
	o, ok := r.oportunidades[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOportunidadRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Oportunidad, error) {
	var out []*entity.Oportunidad
	for _, o := range r.oportunidades {
		if o.EmpresaID == empresaID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOportunidadRepo) Update(o *entity.Oportunidad) error {
	if _, ok := r.oportunidades[o.ID]; !ok {
		return errNoExiste
	}
	cp := *o
	r.oportunidades[o.ID] = &cp
	return nil
}

func (r *fakeOportunidadRepo) Delete(id string) error {
	if _, ok := r.oportunidades[id]; !ok {
		return errNoExiste
	}
	delete(r.oportunidades, id)
	return nil
}

// Caso 1: crear con defaults arranca en prospecto.
func TestOportunidadCreate_Defaults(t *testing.T) {
	uc := usecase.NewOportunidadUseCase(newFakeOportunidadRepo())

	out, err := uc.Create(actorAdmin(), dto.CreateOportunidadRequest{
		ClienteID: "cli-1",
		Nombre:    "Renovación anual",
		Valor:     valor("5000"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EtapaProspecto, out.Etapa)
	assert.Equal(t, empresaA, out.EmpresaID)
	assert.True(t, out.Valor.Equal(valor("5000")))
}

// Caso 2: validaciones de etapa, probabilidad y valor.
func TestOportunidadCreate_Validaciones(t *testing.T) {
	uc := usecase.NewOportunidadUseCase(newFakeOportunidadRepo())

	casos := []dto.CreateOportunidadRequest{
		{ClienteID: "cli-1"},                                                  // sin nombre
		{Nombre: "X"},                                                         // sin cliente
		{ClienteID: "cli-1", Nombre: "X", Etapa: "cerrada"},                   // etapa desconocida
		{ClienteID: "cli-1", Nombre: "X", Probabilidad: 120},                  // fuera de rango
		{ClienteID: "cli-1", Nombre: "X", Valor: valor("-10")},                // negativo
	}
	for _, in := range casos {
		_, err := uc.Create(actorAdmin(), in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

// Caso 3: avanzar de etapa con update parcial.
func TestOportunidadUpdate_AvanzaEtapa(t *testing.T) {
	repo := newFakeOportunidadRepo()
	uc := usecase.NewOportunidadUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateOportunidadRequest{
		ClienteID: "cli-1", Nombre: "Licencias", Valor: valor("1200.50"),
	})
	require.NoError(t, err)

	etapa := entity.EtapaNegociacion
	prob := 75
	actualizada, err := uc.Update(actorAdmin(), out.ID, dto.UpdateOportunidadRequest{
		Etapa:        &etapa,
		Probabilidad: &prob,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EtapaNegociacion, actualizada.Etapa)
	assert.Equal(t, 75, actualizada.Probabilidad)
	assert.Equal(t, "Licencias", actualizada.Nombre, "campos ausentes no cambian")
	assert.True(t, actualizada.Valor.Equal(valor("1200.50")))
}
