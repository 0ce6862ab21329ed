package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// Todo listado exige empresaID: el scoping por empresa es obligatorio,
// nunca una conveniencia opcional.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error)
	// SearchByEmpresa busca por nombre normalizado (sin tildes, case-insensitive).
	SearchByEmpresa(empresaID, nombreNorm string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
