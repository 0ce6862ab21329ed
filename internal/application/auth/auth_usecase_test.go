package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grxsoft/crm-api/internal/application/auth"
	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	pkgjwt "github.com/grxsoft/crm-api/pkg/jwt"
)

const testSecret = "auth-test-secret"

// stubRepo responde GetByEmail con un único usuario sembrado.
type stubRepo struct {
	usuario *entity.Usuario
}

func (r *stubRepo) Create(*entity.Usuario) error                  { return nil }
func (r *stubRepo) GetByID(string) (*entity.Usuario, error)       { return nil, nil }
func (r *stubRepo) ListAll(int, int) ([]*entity.Usuario, error)   { return nil, nil }
func (r *stubRepo) Update(*entity.Usuario) error                  { return nil }
func (r *stubRepo) Delete(string) error                           { return nil }
func (r *stubRepo) ListByEmpresa(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (r *stubRepo) GetByEmail(email string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.Email == email {
		return r.usuario, nil
	}
	return nil, nil
}

func usuarioConPassword(t *testing.T, password string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	e := "empresa-1"
	return &entity.Usuario{
		ID:           "u-1",
		Nombre:       "Login Test",
		Email:        "login@test.com",
		Rol:          entity.RolEstandar,
		EmpresaID:    &e,
		PasswordHash: string(hash),
		Activo:       activo,
	}
}

func authUC(repo *stubRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "crm-api-test",
	})
}

// Caso 1: credenciales correctas devuelven un JWT verificable con los
// claims del usuario.
func TestLogin_Correcto(t *testing.T) {
	uc := authUC(&stubRepo{usuario: usuarioConPassword(t, "secreta123", true)})

	out, err := uc.Login(dto.LoginRequest{Email: " Login@Test.com ", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "login@test.com", out.User.Email)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "empresa-1", claims.EmpresaID)
	assert.Equal(t, entity.RolEstandar, claims.Rol)
}

// Caso 2: password incorrecto y email inexistente devuelven el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := authUC(&stubRepo{usuario: usuarioConPassword(t, "secreta123", true)})

	_, err := uc.Login(dto.LoginRequest{Email: "login@test.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err2 := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err2, domain.ErrUnauthorized)
	assert.Equal(t, err.Error(), err2.Error(), "no debe filtrarse qué emails existen")
}

// Caso 3: cuenta desactivada no puede iniciar sesión.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := authUC(&stubRepo{usuario: usuarioConPassword(t, "secreta123", false)})
	_, err := uc.Login(dto.LoginRequest{Email: "login@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
