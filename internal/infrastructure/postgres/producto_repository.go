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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(pool *pgxpool.Pool, timeout time.Duration) *ProductoRepo {
	return &ProductoRepo{pool: pool, timeout: timeout}
}

const productoCols = `id, empresa_id, nombre, sku, descripcion, precio, activo, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO productos (` + productoCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.EmpresaID, p.Nombre, p.SKU, p.Descripcion, p.Precio, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var p entity.Producto
	err := r.pool.QueryRow(ctx, `SELECT `+productoCols+` FROM productos WHERE id = $1`, id).Scan(
		&p.ID, &p.EmpresaID, &p.Nombre, &p.SKU, &p.Descripcion, &p.Precio, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get producto by id", err)
	}
	return &p, nil
}

// ListByEmpresa lista productos de una empresa con paginación.
func (r *ProductoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Producto, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + productoCols + ` FROM productos WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list productos", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.SKU, &p.Descripcion, &p.Precio, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dataErr("scan producto", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows productos", err)
	}
	return list, nil
}

// Update actualiza un producto. ErrNotFound si el ID no existe.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE productos
		SET nombre = $2, sku = $3, descripcion = $4, precio = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, p.ID, p.Nombre, p.SKU, p.Descripcion, p.Precio, p.Activo, p.UpdatedAt)
	if err != nil {
		return dataErr("update producto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. ErrNotFound si no existe.
func (r *ProductoRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete producto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
