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

var _ repository.OportunidadRepository = (*OportunidadRepo)(nil)

// OportunidadRepo implementación del puerto OportunidadRepository sobre
// PostgreSQL. valor es NUMERIC y escanea a decimal.Decimal vía el codec
// registrado en el pool.
type OportunidadRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewOportunidadRepository construye el adaptador de persistencia para oportunidades.
func NewOportunidadRepository(pool *pgxpool.Pool, timeout time.Duration) *OportunidadRepo {
	return &OportunidadRepo{pool: pool, timeout: timeout}
}

const oportunidadCols = `id, empresa_id, cliente_id, nombre, etapa, valor, probabilidad, fecha_cierre, created_at, updated_at`

// Create persiste una nueva oportunidad.
func (r *OportunidadRepo) Create(o *entity.Oportunidad) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO oportunidades (` + oportunidadCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		o.ID, o.EmpresaID, o.ClienteID, o.Nombre, o.Etapa, o.Valor, o.Probabilidad,
		o.FechaCierre, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert oportunidad", err)
	}
	return nil
}

// GetByID obtiene una oportunidad por ID. Devuelve (nil, nil) si no existe.
func (r *OportunidadRepo) GetByID(id string) (*entity.Oportunidad, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var o entity.Oportunidad
	err := r.pool.QueryRow(ctx, `SELECT `+oportunidadCols+` FROM oportunidades WHERE id = $1`, id).Scan(
		&o.ID, &o.EmpresaID, &o.ClienteID, &o.Nombre, &o.Etapa, &o.Valor, &o.Probabilidad,
		&o.FechaCierre, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get oportunidad by id", err)
	}
	return &o, nil
}

// ListByEmpresa lista oportunidades de una empresa con paginación.
func (r *OportunidadRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Oportunidad, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + oportunidadCols + ` FROM oportunidades WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list oportunidades", err)
	}
	defer rows.Close()
	var list []*entity.Oportunidad
	for rows.Next() {
		var o entity.Oportunidad
		if err := rows.Scan(
			&o.ID, &o.EmpresaID, &o.ClienteID, &o.Nombre, &o.Etapa, &o.Valor, &o.Probabilidad,
			&o.FechaCierre, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, dataErr("scan oportunidad", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows oportunidades", err)
	}
	return list, nil
}

// Update actualiza una oportunidad. ErrNotFound si el ID no existe.
func (r *OportunidadRepo) Update(o *entity.Oportunidad) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE oportunidades
		SET cliente_id = $2, nombre = $3, etapa = $4, valor = $5, probabilidad = $6,
		    fecha_cierre = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		o.ID, o.ClienteID, o.Nombre, o.Etapa, o.Valor, o.Probabilidad, o.FechaCierre, o.UpdatedAt,
	)
	if err != nil {
		return dataErr("update oportunidad", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una oportunidad por ID. ErrNotFound si no existe.
func (r *OportunidadRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM oportunidades WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete oportunidad", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
