package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
}
