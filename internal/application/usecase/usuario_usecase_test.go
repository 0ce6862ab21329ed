package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
)

// Caso 1: crear usuario hashea el password con bcrypt y aplica defaults.
func TestUsuarioCreate_HasheaPasswordYDefaults(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateUsuarioRequest{
		Nombre:   "María Pérez",
		Email:    "  Maria@Test.COM ",
		Password: "secreta123",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@test.com", out.Email, "email se normaliza a minúsculas")
	assert.Equal(t, entity.RolEstandar, out.Rol, "rol por defecto es estandar")
	assert.True(t, out.Activo)

	guardado, err := repo.GetByEmail("maria@test.com")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "nunca se persiste el password plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("secreta123")))
	assert.Empty(t, guardado.Permisos, "usuario estandar arranca sin permisos")
}

// Caso 2: un administrador recibe la matriz completa menos reportes.
func TestUsuarioCreate_AdministradorRecibeMatriz(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateUsuarioRequest{
		Nombre:   "Admin Dos",
		Email:    "admin2@test.com",
		Password: "secreta123",
		Rol:      entity.RolAdministrador,
	})
	require.NoError(t, err)

	guardado, _ := repo.GetByID(out.ID)
	require.NotNil(t, guardado)
	assert.True(t, guardado.Puede(entity.RecursoClientes, entity.AccionEliminar))
	assert.True(t, guardado.Puede(entity.RecursoReportes, entity.AccionVer))
	assert.False(t, guardado.Puede(entity.RecursoReportes, entity.AccionEliminar))
}

// Caso 3: validaciones de esquema.
func TestUsuarioCreate_Validaciones(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())

	casos := []dto.CreateUsuarioRequest{
		{Email: "a@b.com", Password: "secreta123"},                      // sin nombre
		{Nombre: "X", Email: "sin-arroba", Password: "secreta123"},      // email inválido
		{Nombre: "X", Email: "a@b.com", Password: "corta"},              // password corto
		{Nombre: "X", Email: "a@b.com", Password: "secreta123", Rol: "gerente"}, // rol desconocido
	}
	for _, in := range casos {
		_, err := uc.Create(actorAdmin(), in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

// Caso 4: email duplicado se reporta como conflicto.
func TestUsuarioCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	in := dto.CreateUsuarioRequest{Nombre: "Uno", Email: "dup@test.com", Password: "secreta123"}
	_, err := uc.Create(actorAdmin(), in)
	require.NoError(t, err)

	in.Nombre = "Dos"
	_, err = uc.Create(actorAdmin(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Caso 5: sin usuarios.crear en la matriz la operación se deniega en la
// frontera de acceso a datos, no solo en la UI.
func TestUsuarioCreate_SinPermisoDeniega(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	actor := actorCon(entity.MatrizPermisos{
		entity.RecursoUsuarios: {Ver: entity.Flag(true)},
	})
	_, err := uc.Create(actor, dto.CreateUsuarioRequest{
		Nombre: "X", Email: "x@test.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Empty(t, repo.usuarios, "no debe persistir nada")

	var pd *domain.PermissionDeniedError
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, entity.RecursoUsuarios, pd.Resource)
	assert.Equal(t, entity.AccionCrear, pd.Action)
}

// Caso 6: sin actor (sesión inexistente) la operación es no autorizada.
func TestUsuarioCreate_SinActor(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())
	_, err := uc.Create(nil, dto.CreateUsuarioRequest{
		Nombre: "X", Email: "x@test.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 7: update parcial solo toca los campos presentes.
func TestUsuarioUpdate_MergeParcial(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateUsuarioRequest{
		Nombre: "Original", Email: "orig@test.com", Telefono: "300123", Password: "secreta123",
	})
	require.NoError(t, err)

	nuevoNombre := "Renombrado"
	actualizado, err := uc.Update(actorAdmin(), out.ID, dto.UpdateUsuarioRequest{Nombre: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Renombrado", actualizado.Nombre)
	assert.Equal(t, "orig@test.com", actualizado.Email, "campos ausentes no cambian")
	assert.Equal(t, "300123", actualizado.Telefono)
}

// Caso 8: update de un ID inexistente devuelve not found.
func TestUsuarioUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())
	nombre := "X"
	_, err := uc.Update(actorAdmin(), "no-existe", dto.UpdateUsuarioRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 9: desactivar apaga la cuenta sin borrarla.
func TestUsuarioDesactivar(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(actorAdmin(), dto.CreateUsuarioRequest{
		Nombre: "Temporal", Email: "temp@test.com", Password: "secreta123",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(actorAdmin(), out.ID))
	guardado, _ := repo.GetByID(out.ID)
	require.NotNil(t, guardado)
	assert.False(t, guardado.Activo)
}
