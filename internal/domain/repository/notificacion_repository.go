package repository

import "github.com/grxsoft/crm-api/internal/domain/entity"

// NotificacionRepository define el puerto de persistencia para Notificacion.
type NotificacionRepository interface {
	Create(notificacion *entity.Notificacion) error
	GetByID(id string) (*entity.Notificacion, error)
	ListByUsuario(empresaID, usuarioID string, limit, offset int) ([]*entity.Notificacion, error)
	MarcarLeida(id string) error
	Delete(id string) error
}
