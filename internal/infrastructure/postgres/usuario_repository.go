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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// La matriz de permisos se persiste como JSONB en la columna permisos.
type UsuarioRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool, timeout time.Duration) *UsuarioRepo {
	return &UsuarioRepo{pool: pool, timeout: timeout}
}

const usuarioCols = `id, nombre, email, telefono, rol, empresa_id, equipo_id, password_hash, activo, permisos, created_at, updated_at`

// Create persiste un nuevo usuario. El índice único sobre email hace cumplir
// que el email identifica a un usuario en todo el almacén.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Nombre, u.Email, u.Telefono, u.Rol, u.EmpresaID, u.EquipoID,
		u.PasswordHash, u.Activo, u.Permisos, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return dataErr("insert usuario", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	row := r.pool.QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
	return scanUsuario(row, "get usuario by id")
}

// GetByEmail obtiene un usuario por email (identificador de inicio de sesión).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	row := r.pool.QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE email = $1 LIMIT 1`, email)
	return scanUsuario(row, "get usuario by email")
}

// ListAll lista usuarios de todas las empresas (scripts de administración).
func (r *UsuarioRepo) ListAll(limit, offset int) ([]*entity.Usuario, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dataErr("list usuarios", err)
	}
	defer rows.Close()
	return collectUsuarios(rows)
}

// ListByEmpresa lista usuarios de una empresa con paginación.
func (r *UsuarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Usuario, error) {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, dataErr("list usuarios por empresa", err)
	}
	defer rows.Close()
	return collectUsuarios(rows)
}

// Update actualiza un usuario. ErrNotFound si el ID no existe.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	query := `
		UPDATE usuarios
		SET nombre = $2, email = $3, telefono = $4, rol = $5, empresa_id = $6,
		    equipo_id = $7, password_hash = $8, activo = $9, permisos = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		u.ID, u.Nombre, u.Email, u.Telefono, u.Rol, u.EmpresaID, u.EquipoID,
		u.PasswordHash, u.Activo, u.Permisos, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return dataErr("update usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID. ErrNotFound si no existe.
func (r *UsuarioRepo) Delete(id string) error {
	ctx, cancel := opCtx(r.timeout)
	defer cancel()
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return dataErr("delete usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUsuario(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.Telefono, &u.Rol, &u.EmpresaID, &u.EquipoID,
		&u.PasswordHash, &u.Activo, &u.Permisos, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataErr(op, err)
	}
	return &u, nil
}

func collectUsuarios(rows pgx.Rows) ([]*entity.Usuario, error) {
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Nombre, &u.Email, &u.Telefono, &u.Rol, &u.EmpresaID, &u.EquipoID,
			&u.PasswordHash, &u.Activo, &u.Permisos, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, dataErr("scan usuario", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows usuarios", err)
	}
	return list, nil
}
