package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// EmpresaRepository define el puerto de persistencia para Empresa.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	Delete(id string) error
}
