package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/pkg/texto"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
// La columna nombre_norm guarda el nombre sin tildes y en minúsculas para la
// búsqueda accent-insensitive.
type ClienteRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(pool *pgxpool.Pool, timeout time.Duration) *ClienteRepo {
	return &ClienteRepo{pool: pool, timeout: timeout}
}

const clienteCols = `id, empresa_id, nombre, email, telefono, ciudad, notas, activo, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		INSERT INTO clientes (` + clienteCols + `, nombre_norm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.EmpresaID, c.Nombre, c.Email, c.Telefono, c.Ciudad, c.Notas,
		c.Activo, c.CreatedAt, c.UpdatedAt, texto.Normalizar(c.Nombre),
	)
	if err != nil {
		return dataErr("insert cliente", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	row := r.pool.QueryRow(ctx, `SELECT `+clienteCols+` FROM clientes WHERE id = $1`, id)
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.EmpresaID, &c.Nombre, &c.Email, &c.Telefono, &c.Ciudad, &c.Notas, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get cliente by id", err)
	}
	return &c, nil
}

// ListByEmpresa lista clientes de una empresa con paginación.
func (r *ClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list clientes", err)
	}
	defer rows.Close()
	return collectClientes(rows)
}

// SearchByEmpresa busca por prefijo/substring del nombre normalizado.
func (r *ClienteRepo) SearchByEmpresa(empresaID, nombreNorm string, limit, offset int) ([]*entity.Cliente, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		SELECT ` + clienteCols + ` FROM clientes
		WHERE empresa_id = $1 AND nombre_norm LIKE '%' || $2 || '%'
		ORDER BY nombre_norm LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, empresaID, nombreNorm, limit, offset)
	if err != nil {
		return nil, dataErr("search clientes", err)
	}
	defer rows.Close()
	return collectClientes(rows)
}

// Update actualiza un cliente. ErrNotFound si el ID no existe.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE clientes
		SET nombre = $2, email = $3, telefono = $4, ciudad = $5, notas = $6,
		    activo = $7, updated_at = $8, nombre_norm = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Nombre, c.Email, c.Telefono, c.Ciudad, c.Notas, c.Activo, c.UpdatedAt, texto.Normalizar(c.Nombre),
	)
	if err != nil {
		return dataErr("update cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. ErrNotFound si no existe.
func (r *ClienteRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nombre, &c.Email, &c.Telefono, &c.Ciudad, &c.Notas, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dataErr("scan cliente", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows clientes", err)
	}
	return list, nil
}
