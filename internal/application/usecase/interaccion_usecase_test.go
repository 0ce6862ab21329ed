package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
)

func interaccionFixture() (*usecase.InteraccionUseCase, *fakeInteraccionRepo, *fakeClienteRepo, *fakeAlmacen) {
	repo := newFakeInteraccionRepo()
	clientes := newFakeClienteRepo()
	almacen := newFakeAlmacen()
	sembrarCliente(clientes, "cli-1", empresaA, "ACME")
	return usecase.NewInteraccionUseCase(repo, clientes, almacen), repo, clientes, almacen
}

// Caso 1: crear sin adjunto registra la interacción con el actor como autor.
func TestInteraccionCreate_SinAdjunto(t *testing.T) {
	uc, repo, _, almacen := interaccionFixture()

	out, err := uc.Create(context.Background(), actorAdmin(), dto.CreateInteraccionRequest{
		ClienteID: "cli-1",
		Tipo:      entity.InteraccionCorreo,
		Notas:     "seguimiento de propuesta",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "actor-1", out.UsuarioID)
	assert.Equal(t, empresaA, out.EmpresaID)
	assert.Empty(t, out.AdjuntoURL)
	assert.Len(t, repo.interacciones, 1)
	assert.Empty(t, almacen.objetos)
}

// Caso 2: crear con adjunto sube el binario y guarda key + URL.
func TestInteraccionCreate_ConAdjunto(t *testing.T) {
	uc, repo, _, almacen := interaccionFixture()

	out, err := uc.Create(context.Background(), actorAdmin(), dto.CreateInteraccionRequest{
		ClienteID: "cli-1",
		Tipo:      entity.InteraccionReunion,
	}, &usecase.AdjuntoEntrada{
		Nombre:      "acta.pdf",
		ContentType: "application/pdf",
		Data:        []byte("contenido"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AdjuntoURL)
	require.Len(t, almacen.objetos, 1)

	guardada, _ := repo.GetByID(out.ID)
	require.NotNil(t, guardada)
	assert.NotEmpty(t, guardada.AdjuntoKey)
	_, existe := almacen.objetos[guardada.AdjuntoKey]
	assert.True(t, existe, "la key persistida debe apuntar al objeto subido")
}

// Caso 3: el cliente debe existir y ser de la empresa del actor.
func TestInteraccionCreate_ClienteInvalido(t *testing.T) {
	uc, _, clientes, _ := interaccionFixture()
	sembrarCliente(clientes, "cli-ajeno", empresaB, "Ajeno")

	_, err := uc.Create(context.Background(), actorAdmin(), dto.CreateInteraccionRequest{
		ClienteID: "no-existe",
	}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(context.Background(), actorAdmin(), dto.CreateInteraccionRequest{
		ClienteID: "cli-ajeno",
	}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation, "cliente de otra empresa cuenta como inexistente")
}

// Caso 4: eliminar la interacción elimina también el adjunto del storage.
func TestInteraccionDelete_EliminaAdjunto(t *testing.T) {
	uc, repo, _, almacen := interaccionFixture()

	out, err := uc.Create(context.Background(), actorAdmin(), dto.CreateInteraccionRequest{
		ClienteID: "cli-1",
	}, &usecase.AdjuntoEntrada{Nombre: "foto.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	require.Len(t, almacen.objetos, 1)

	require.NoError(t, uc.Delete(context.Background(), actorAdmin(), out.ID))

	assert.Empty(t, repo.interacciones, "el documento debe eliminarse")
	assert.Empty(t, almacen.objetos, "el binario debe eliminarse con su dueño")
}

// Caso 5: las interacciones se gobiernan con la entrada clientes de la matriz.
func TestInteraccion_PermisoDeClientes(t *testing.T) {
	uc, _, _, _ := interaccionFixture()

	sinClientes := actorCon(entity.MatrizPermisos{
		entity.RecursoTareas: {Ver: entity.Flag(true), Crear: entity.Flag(true)},
	})
	_, err := uc.Create(context.Background(), sinClientes, dto.CreateInteraccionRequest{
		ClienteID: "cli-1",
	}, nil)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
