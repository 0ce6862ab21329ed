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

var _ repository.InteraccionRepository = (*InteraccionRepo)(nil)

// InteraccionRepo implementación del puerto InteraccionRepository sobre PostgreSQL.
type InteraccionRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewInteraccionRepository construye el adaptador de persistencia para interacciones.
func NewInteraccionRepository(pool *pgxpool.Pool, timeout time.Duration) *InteraccionRepo {
	return &InteraccionRepo{pool: pool, timeout: timeout}
}

const interaccionCols = `id, empresa_id, cliente_id, usuario_id, tipo, notas, fecha, adjunto_url, adjunto_key, created_at, updated_at`

// Create persiste una nueva interacción.
func (r *InteraccionRepo) Create(i *entity.Interaccion) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO interacciones (` + interaccionCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		i.ID, i.EmpresaID, i.ClienteID, i.UsuarioID, i.Tipo, i.Notas, i.Fecha,
		i.AdjuntoURL, i.AdjuntoKey, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert interaccion", err)
	}
	return nil
}

// GetByID obtiene una interacción por ID. Devuelve (nil, nil) si no existe.
func (r *InteraccionRepo) GetByID(id string) (*entity.Interaccion, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var i entity.Interaccion
	err := r.pool.QueryRow(ctx, `SELECT `+interaccionCols+` FROM interacciones WHERE id = $1`, id).Scan(
		&i.ID, &i.EmpresaID, &i.ClienteID, &i.UsuarioID, &i.Tipo, &i.Notas, &i.Fecha,
		&i.AdjuntoURL, &i.AdjuntoKey, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get interaccion by id", err)
	}
	return &i, nil
}

// ListByEmpresa lista interacciones de una empresa con paginación.
func (r *InteraccionRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Interaccion, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + interaccionCols + ` FROM interacciones WHERE empresa_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list interacciones", err)
	}
	defer rows.Close()
	return collectInteracciones(rows)
}

// ListByCliente lista interacciones de un cliente dentro de la empresa.
func (r *InteraccionRepo) ListByCliente(empresaID, clienteID string, limit, offset int) ([]*entity.Interaccion, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		SELECT ` + interaccionCols + ` FROM interacciones
		WHERE empresa_id = $1 AND cliente_id = $2
		ORDER BY fecha DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, empresaID, clienteID, limit, offset)
	if err != nil {
		return nil, dataErr("list interacciones por cliente", err)
	}
	defer rows.Close()
	return collectInteracciones(rows)
}

// Update actualiza una interacción. ErrNotFound si el ID no existe.
func (r *InteraccionRepo) Update(i *entity.Interaccion) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE interacciones
		SET cliente_id = $2, usuario_id = $3, tipo = $4, notas = $5, fecha = $6,
		    adjunto_url = $7, adjunto_key = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		i.ID, i.ClienteID, i.UsuarioID, i.Tipo, i.Notas, i.Fecha, i.AdjuntoURL, i.AdjuntoKey, i.UpdatedAt,
	)
	if err != nil {
		return dataErr("update interaccion", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una interacción por ID. ErrNotFound si no existe.
// El borrado del adjunto en el object storage lo coordina el use case.
func (r *InteraccionRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM interacciones WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete interaccion", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectInteracciones(rows pgx.Rows) ([]*entity.Interaccion, error) {
	var list []*entity.Interaccion
	for rows.Next() {
		var i entity.Interaccion
		if err := rows.Scan(
			&i.ID, &i.EmpresaID, &i.ClienteID, &i.UsuarioID, &i.Tipo, &i.Notas, &i.Fecha,
			&i.AdjuntoURL, &i.AdjuntoKey, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, dataErr("scan interaccion", err)
		}
		list = append(list, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows interacciones", err)
	}
	return list, nil
}
