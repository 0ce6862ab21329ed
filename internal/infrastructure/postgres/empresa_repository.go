package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(pool *pgxpool.Pool, timeout time.Duration) *EmpresaRepo {
	return &EmpresaRepo{pool: pool, timeout: timeout}
}

const empresaCols = `id, nombre, nit, direccion, telefono, email, activo, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO empresas (` + empresaCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Nombre, e.NIT, e.Direccion, e.Telefono, e.Email, e.Activo, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert empresa", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var e entity.Empresa
	err := r.pool.QueryRow(ctx, `SELECT `+empresaCols+` FROM empresas WHERE id = $1`, id).Scan(
		&e.ID, &e.Nombre, &e.NIT, &e.Direccion, &e.Telefono, &e.Email, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get empresa by id", err)
	}
	return &e, nil
}

// List lista todas las empresas con paginación.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + empresaCols + ` FROM empresas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dataErr("list empresas", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.NIT, &e.Direccion, &e.Telefono, &e.Email, &e.Activo, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, dataErr("scan empresa", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows empresas", err)
	}
	return list, nil
}

// Update actualiza una empresa. ErrNotFound si el ID no existe.
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE empresas
		SET nombre = $2, nit = $3, direccion = $4, telefono = $5, email = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, e.ID, e.Nombre, e.NIT, e.Direccion, e.Telefono, e.Email, e.Activo, e.UpdatedAt)
	if err != nil {
		return dataErr("update empresa", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por ID. ErrNotFound si no existe.
func (r *EmpresaRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete empresa", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
