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

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación del puerto ProyectoRepository sobre PostgreSQL.
type ProyectoRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewProyectoRepository construye el adaptador de persistencia para proyectos.
func NewProyectoRepository(pool *pgxpool.Pool, timeout time.Duration) *ProyectoRepo {
	return &ProyectoRepo{pool: pool, timeout: timeout}
}

const proyectoCols = `id, empresa_id, cliente_id, nombre, descripcion, estado, fecha_inicio, fecha_fin, created_at, updated_at`

// Create persiste un nuevo proyecto.
func (r *ProyectoRepo) Create(p *entity.Proyecto) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO proyectos (` + proyectoCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.EmpresaID, p.ClienteID, p.Nombre, p.Descripcion, p.Estado,
		p.FechaInicio, p.FechaFin, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert proyecto", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID. Devuelve (nil, nil) si no existe.
func (r *ProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var p entity.Proyecto
	err := r.pool.QueryRow(ctx, `SELECT `+proyectoCols+` FROM proyectos WHERE id = $1`, id).Scan(
		&p.ID, &p.EmpresaID, &p.ClienteID, &p.Nombre, &p.Descripcion, &p.Estado,
		&p.FechaInicio, &p.FechaFin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get proyecto by id", err)
	}
	return &p, nil
}

// ListByEmpresa lista proyectos de una empresa con paginación.
func (r *ProyectoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Proyecto, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + proyectoCols + ` FROM proyectos WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list proyectos", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(
			&p.ID, &p.EmpresaID, &p.ClienteID, &p.Nombre, &p.Descripcion, &p.Estado,
			&p.FechaInicio, &p.FechaFin, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, dataErr("scan proyecto", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows proyectos", err)
	}
	return list, nil
}

// Update actualiza un proyecto. ErrNotFound si el ID no existe.
func (r *ProyectoRepo) Update(p *entity.Proyecto) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE proyectos
		SET cliente_id = $2, nombre = $3, descripcion = $4, estado = $5,
		    fecha_inicio = $6, fecha_fin = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.ClienteID, p.Nombre, p.Descripcion, p.Estado, p.FechaInicio, p.FechaFin, p.UpdatedAt,
	)
	if err != nil {
		return dataErr("update proyecto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proyecto por ID. ErrNotFound si no existe.
func (r *ProyectoRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete proyecto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
