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

var _ repository.NotificacionRepository = (*NotificacionRepo)(nil)

// NotificacionRepo implementación del puerto NotificacionRepository sobre PostgreSQL.
type NotificacionRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewNotificacionRepository construye el adaptador de persistencia para notificaciones.
func NewNotificacionRepository(pool *pgxpool.Pool, timeout time.Duration) *NotificacionRepo {
	return &NotificacionRepo{pool: pool, timeout: timeout}
}

const notificacionCols = `id, empresa_id, usuario_id, titulo, mensaje, leida, created_at`

// Create persiste una nueva notificación.
func (r *NotificacionRepo) Create(n *entity.Notificacion) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `INSERT INTO notificaciones (` + notificacionCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query, n.ID, n.EmpresaID, n.UsuarioID, n.Titulo, n.Mensaje, n.Leida, n.CreatedAt)
	if err != nil {
		return dataErr("insert notificacion", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID. Devuelve (nil, nil) si no existe.
func (r *NotificacionRepo) GetByID(id string) (*entity.Notificacion, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	var n entity.Notificacion
	err := r.pool.QueryRow(ctx, `SELECT `+notificacionCols+` FROM notificaciones WHERE id = $1`, id).Scan(
		&n.ID, &n.EmpresaID, &n.UsuarioID, &n.Titulo, &n.Mensaje, &n.Leida, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr("get notificacion by id", err)
	}
	return &n, nil
}

// ListByUsuario lista notificaciones de un usuario dentro de la empresa.
func (r *NotificacionRepo) ListByUsuario(empresaID, usuarioID string, limit, offset int) ([]*entity.Notificacion, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		SELECT ` + notificacionCols + ` FROM notificaciones
		WHERE empresa_id = $1 AND usuario_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, empresaID, usuarioID, limit, offset)
	if err != nil {
		return nil, dataErr("list notificaciones", err)
	}
	defer rows.Close()
	var list []*entity.Notificacion
	for rows.Next() {
		var n entity.Notificacion
		if err := rows.Scan(&n.ID, &n.EmpresaID, &n.UsuarioID, &n.Titulo, &n.Mensaje, &n.Leida, &n.CreatedAt); err != nil {
			return nil, dataErr("scan notificacion", err)
		}
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows notificaciones", err)
	}
	return list, nil
}

// MarcarLeida marca una notificación como leída. ErrNotFound si no existe.
func (r *NotificacionRepo) MarcarLeida(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `UPDATE notificaciones SET leida = TRUE WHERE id = $1`, id)
	if err != nil {
		return dataErr("marcar notificacion leida", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una notificación por ID. ErrNotFound si no existe.
func (r *NotificacionRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM notificaciones WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete notificacion", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
