package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// TareaRepository define el puerto de persistencia para Tarea.
type TareaRepository interface {
	Create(tarea *entity.Tarea) error
	GetByID(id string) (*entity.Tarea, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Tarea, error)
	ListByUsuario(empresaID, usuarioID string, limit, offset int) ([]*entity.Tarea, error)
	Update(tarea *entity.Tarea) error
	Delete(id string) error
}
