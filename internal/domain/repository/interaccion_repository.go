package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// InteraccionRepository define el puerto de persistencia para Interaccion.
type InteraccionRepository interface {
	Create(interaccion *entity.Interaccion) error
	GetByID(id string) (*entity.Interaccion, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Interaccion, error)
	ListByCliente(empresaID, clienteID string, limit, offset int) ([]*entity.Interaccion, error)
	Update(interaccion *entity.Interaccion) error
	Delete(id string) error
}
