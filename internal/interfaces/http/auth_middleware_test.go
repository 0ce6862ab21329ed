package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/domain/entity"
	apphttp "github.com/grxsoft/crm-api/internal/interfaces/http"
	pkgjwt "github.com/grxsoft/crm-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmpresaID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "crm-api-test"
	testExpMin    = 60
)

// stubUsuarioRepo devuelve siempre el mismo usuario para GetByID.
type stubUsuarioRepo struct {
	usuario *entity.Usuario
}

func (r *stubUsuarioRepo) Create(*entity.Usuario) error { return nil }
func (r *stubUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.ID == id {
		return r.usuario, nil
	}
	return nil, nil
}
func (r *stubUsuarioRepo) GetByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (r *stubUsuarioRepo) ListAll(int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (r *stubUsuarioRepo) ListByEmpresa(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (r *stubUsuarioRepo) Update(*entity.Usuario) error { return nil }
func (r *stubUsuarioRepo) Delete(string) error          { return nil }

func usuarioDePrueba(activo bool) *entity.Usuario {
	e := testEmpresaID
	return &entity.Usuario{
		ID:        testUserID,
		Nombre:    "Usuario Test",
		Email:     "test@test.com",
		Rol:       entity.RolEstandar,
		EmpresaID: &e,
		Activo:    activo,
		Permisos: entity.MatrizPermisos{
			entity.RecursoClientes: {Ver: entity.Flag(true)},
		},
	}
}

// buildTestApp construye una app Fiber mínima: AuthMiddleware + un handler
// que expone el actor cargado en locals.
func buildTestApp(repo *stubUsuarioRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.JSON(fiber.Map{
				"email":        actor.Email,
				"puede_ver":    actor.Puede(entity.RecursoClientes, entity.AccionVer),
				"puede_borrar": actor.Puede(entity.RecursoClientes, entity.AccionEliminar),
			})
		},
	)
	return app
}

func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, entity.RolEstandar, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de un usuario activo → el actor con su matriz queda
// disponible para el handler.
func TestAuthMiddleware_TokenValidoCargaActor(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: usuarioDePrueba(true)})
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test@test.com", body["email"])
	assert.Equal(t, true, body["puede_ver"], "la matriz viaja con el actor")
	assert.Equal(t, false, body["puede_borrar"], "flag ausente deniega")
}

// Caso 2: sin header Authorization → 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: usuarioDePrueba(true)})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token firmado con otro secret → 401.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: usuarioDePrueba(true)})
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testEmpresaID, entity.RolEstandar, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: formato de header incorrecto → 401.
func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: usuarioDePrueba(true)})
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token válido pero el usuario ya no existe en la DB → 401. El token
// identifica, la DB autoriza.
func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: nil})
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: usuario desactivado → 401 aunque el token siga vigente.
func TestAuthMiddleware_UsuarioInactivo(t *testing.T) {
	app := buildTestApp(&stubUsuarioRepo{usuario: usuarioDePrueba(false)})
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
