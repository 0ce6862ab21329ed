package usecase_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/pkg/texto"
)

// Los fakes devuelven los mismos sentinelas que los repos reales.
var (
	errEmailDuplicado = domain.ErrEmailAlreadyExists
	errNoExiste       = domain.ErrNotFound
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de los use cases
// ──────────────────────────────────────────────────────────────────────────────

const (
	empresaA = "empresa-a"
	empresaB = "empresa-b"
)

// actorCon devuelve un usuario de empresaA con la matriz indicada.
func actorCon(permisos entity.MatrizPermisos) *entity.Usuario {
	e := empresaA
	return &entity.Usuario{
		ID:        "actor-1",
		Nombre:    "Actor",
		Email:     "actor@test.com",
		Rol:       entity.RolEstandar,
		EmpresaID: &e,
		Activo:    true,
		Permisos:  permisos,
	}
}

// actorAdmin devuelve un administrador de empresaA con la matriz estándar.
func actorAdmin() *entity.Usuario {
	u := actorCon(entity.MatrizAdministrador())
	u.Rol = entity.RolAdministrador
	return u
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, e := range r.usuarios {
		if e.Email == u.Email {
			return errEmailDuplicado
		}
	}
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) ListAll(limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		if u.EmpresaID != nil && *u.EmpresaID == empresaID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return errNoExiste
	}
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	if _, ok := r.usuarios[id]; !ok {
		return errNoExiste
	}
	delete(r.usuarios, id)
	return nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: map[string]*entity.Cliente{}}
}

var _ repository.ClienteRepository = (*fakeClienteRepo)(nil)

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) SearchByEmpresa(empresaID, nombreNorm string, limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID && strings.Contains(texto.Normalizar(c.Nombre), nombreNorm) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return errNoExiste
	}
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *fakeClienteRepo) Delete(id string) error {
	if _, ok := r.clientes[id]; !ok {
		return errNoExiste
	}
	delete(r.clientes, id)
	return nil
}

type fakeInteraccionRepo struct {
	interacciones map[string]*entity.Interaccion
}

func newFakeInteraccionRepo() *fakeInteraccionRepo {
	return &fakeInteraccionRepo{interacciones: map[string]*entity.Interaccion{}}
}

var _ repository.InteraccionRepository = (*fakeInteraccionRepo)(nil)

func (r *fakeInteraccionRepo) Create(i *entity.Interaccion) error {
	cp := *i
	r.interacciones[i.ID] = &cp
	return nil
}

func (r *fakeInteraccionRepo) GetByID(id string) (*entity.Interaccion, error) {
	i, ok := r.interacciones[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInteraccionRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Interaccion, error) {
	var out []*entity.Interaccion
	for _, i := range r.interacciones {
		if i.EmpresaID == empresaID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInteraccionRepo) ListByCliente(empresaID, clienteID string, limit, offset int) ([]*entity.Interaccion, error) {
	var out []*entity.Interaccion
	for _, i := range r.interacciones {
		if i.EmpresaID == empresaID && i.ClienteID == clienteID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInteraccionRepo) Update(i *entity.Interaccion) error {
	if _, ok := r.interacciones[i.ID]; !ok {
		return errNoExiste
	}
	cp := *i
	r.interacciones[i.ID] = &cp
	return nil
}

func (r *fakeInteraccionRepo) Delete(id string) error {
	if _, ok := r.interacciones[id]; !ok {
		return errNoExiste
	}
	delete(r.interacciones, id)
	return nil
}

// fakeAlmacen simula el object storage de adjuntos.
type fakeAlmacen struct {
	objetos map[string][]byte
}

func newFakeAlmacen() *fakeAlmacen {
	return &fakeAlmacen{objetos: map[string][]byte{}}
}

func (a *fakeAlmacen) Put(_ context.Context, nombre, _ string, data []byte) (string, string, error) {
	key := "adjuntos/" + nombre
	a.objetos[key] = data
	return key, "https://storage.test/" + key, nil
}

func (a *fakeAlmacen) Delete(_ context.Context, key string) error {
	delete(a.objetos, key)
	return nil
}

// fakeMetricasRepo devuelve conteos fijos.
type fakeMetricasRepo struct {
	conteos  []repository.ConteoColeccion
	pipeline []repository.EtapaPipelineResult
}

var _ repository.MetricasRepository = (*fakeMetricasRepo)(nil)

func (r *fakeMetricasRepo) CountCollections(_ context.Context, _ string) ([]repository.ConteoColeccion, error) {
	return r.conteos, nil
}

func (r *fakeMetricasRepo) PipelinePorEtapa(_ context.Context, _ string) ([]repository.EtapaPipelineResult, error) {
	return r.pipeline, nil
}

// valor construye un decimal desde string, para literales de test.
func valor(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
