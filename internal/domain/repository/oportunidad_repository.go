package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// OportunidadRepository define el puerto de persistencia para Oportunidad.
type OportunidadRepository interface {
	Create(oportunidad *entity.Oportunidad) error
	GetByID(id string) (*entity.Oportunidad, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Oportunidad, error)
	Update(oportunidad *entity.Oportunidad) error
	Delete(id string) error
}
