package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
)

func sembrarCliente(repo *fakeClienteRepo, id, empresaID, nombre string) {
	now := time.Now()
	repo.clientes[id] = &entity.Cliente{
		ID:        id,
		EmpresaID: empresaID,
		Nombre:    nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Caso 1: crear asigna la empresa del actor, nunca la del request.
func TestClienteCreate_ScopedAlActor(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateClienteRequest{Nombre: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, empresaA, out.EmpresaID)
	assert.True(t, out.Activo)
}

// Caso 2: un registro de otra empresa se oculta, no se filtra como error.
func TestClienteGetByID_OtraEmpresaInvisible(t *testing.T) {
	repo := newFakeClienteRepo()
	sembrarCliente(repo, "c1", empresaB, "Ajeno")
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.GetByID(actorAdmin(), "c1")
	require.NoError(t, err)
	assert.Nil(t, out, "registro de otra empresa debe ser invisible")
}

// Caso 3: list solo devuelve los clientes de la empresa del actor.
func TestClienteList_SoloEmpresaPropia(t *testing.T) {
	repo := newFakeClienteRepo()
	sembrarCliente(repo, "c1", empresaA, "Propio")
	sembrarCliente(repo, "c2", empresaB, "Ajeno")
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.List(actorAdmin(), 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Propio", out.Items[0].Nombre)
}

// Caso 4: lista vacía es una respuesta normal, no un error.
func TestClienteList_Vacia(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	out, err := uc.List(actorAdmin(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items, "items debe serializar como [] y no como null")
}

// Caso 5: la búsqueda ignora tildes y mayúsculas.
func TestClienteSearch_SinTildes(t *testing.T) {
	repo := newFakeClienteRepo()
	sembrarCliente(repo, "c1", empresaA, "José Rodríguez")
	sembrarCliente(repo, "c2", empresaA, "Pedro Gómez")
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.Search(actorAdmin(), "JOSE", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "José Rodríguez", out.Items[0].Nombre)
}

// Caso 6: update y delete sobre registros de otra empresa devuelven not found.
func TestClienteUpdateDelete_OtraEmpresa(t *testing.T) {
	repo := newFakeClienteRepo()
	sembrarCliente(repo, "c1", empresaB, "Ajeno")
	uc := usecase.NewClienteUseCase(repo)

	nombre := "Intruso"
	_, err := uc.Update(actorAdmin(), "c1", dto.UpdateClienteRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(actorAdmin(), "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	guardado, _ := repo.GetByID("c1")
	require.NotNil(t, guardado)
	assert.Equal(t, "Ajeno", guardado.Nombre, "el registro ajeno no debe tocarse")
}

// Caso 7: la matriz gobierna cada acción por separado.
func TestCliente_PermisosPorAccion(t *testing.T) {
	repo := newFakeClienteRepo()
	sembrarCliente(repo, "c1", empresaA, "Propio")
	uc := usecase.NewClienteUseCase(repo)

	soloVer := actorCon(entity.MatrizPermisos{
		entity.RecursoClientes: {Ver: entity.Flag(true)},
	})

	_, err := uc.GetByID(soloVer, "c1")
	assert.NoError(t, err, "ver está permitido")

	_, err = uc.Create(soloVer, dto.CreateClienteRequest{Nombre: "Nuevo"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = uc.Delete(soloVer, "c1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
