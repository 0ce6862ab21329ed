package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Usuario es la única entidad no scoped a empresa: ListAll cruza tenants
// (lo usan los scripts de administración).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	ListAll(limit, offset int) ([]*entity.Usuario, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Delete(id string) error
}
