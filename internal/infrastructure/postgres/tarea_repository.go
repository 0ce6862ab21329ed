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

var _ repository.TareaRepository = (*TareaRepo)(nil)

// TareaRepo implementación del puerto TareaRepository sobre PostgreSQL.
type TareaRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTareaRepository construye el adaptador de persistencia para tareas.
func NewTareaRepository(pool *pgxpool.Pool, timeout time.Duration) *TareaRepo {
	return &TareaRepo{pool: pool, timeout: timeout}
}

const tareaCols = `id, empresa_id, usuario_id, titulo, descripcion, estado, prioridad, fecha_vencimiento, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *TareaRepo) Create(t *entity.Tarea) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO tareas (` + tareaCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.EmpresaID, t.UsuarioID, t.Titulo, t.Descripcion, t.Estado, t.Prioridad,
		t.FechaVencimiento, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return dataErr("insert tarea", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. Devuelve (nil, nil) si no existe.
func (r *TareaRepo) GetByID(id string) (*entity.Tarea, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var t entity.Tarea
	err := r.pool.QueryRow(ctx, `SELECT `+tareaCols+` FROM tareas WHERE id = $1`, id).Scan(
		&t.ID, &t.EmpresaID, &t.UsuarioID, &t.Titulo, &t.Descripcion, &t.Estado, &t.Prioridad,
		&t.FechaVencimiento, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get tarea by id", err)
	}
	return &t, nil
}

// ListByEmpresa lista tareas de una empresa con paginación.
func (r *TareaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Tarea, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + tareaCols + ` FROM tareas WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list tareas", err)
	}
	defer rows.Close()
	return collectTareas(rows)
}

// ListByUsuario lista tareas asignadas a un usuario dentro de la empresa.
func (r *TareaRepo) ListByUsuario(empresaID, usuarioID string, limit, offset int) ([]*entity.Tarea, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		SELECT ` + tareaCols + ` FROM tareas
		WHERE empresa_id = $1 AND usuario_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, empresaID, usuarioID, limit, offset)
	if err != nil {
		return nil, dataErr("list tareas por usuario", err)
	}
	defer rows.Close()
	return collectTareas(rows)
}

// Update actualiza una tarea. ErrNotFound si el ID no existe.
func (r *TareaRepo) Update(t *entity.Tarea) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE tareas
		SET usuario_id = $2, titulo = $3, descripcion = $4, estado = $5, prioridad = $6,
		    fecha_vencimiento = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.UsuarioID, t.Titulo, t.Descripcion, t.Estado, t.Prioridad, t.FechaVencimiento, t.UpdatedAt,
	)
	if err != nil {
		return dataErr("update tarea", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarea por ID. ErrNotFound si no existe.
func (r *TareaRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM tareas WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete tarea", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectTareas(rows pgx.Rows) ([]*entity.Tarea, error) {
	var list []*entity.Tarea
	for rows.Next() {
		var t entity.Tarea
		if err := rows.Scan(
			&t.ID, &t.EmpresaID, &t.UsuarioID, &t.Titulo, &t.Descripcion, &t.Estado, &t.Prioridad,
			&t.FechaVencimiento, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, dataErr("scan tarea", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows tareas", err)
	}
	return list, nil
}
