package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// ProyectoRepository define el puerto de persistencia para Proyecto.
type ProyectoRepository interface {
	Create(proyecto *entity.Proyecto) error
	GetByID(id string) (*entity.Proyecto, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Proyecto, error)
	Update(proyecto *entity.Proyecto) error
	Delete(id string) error
}
