package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// NotificacionUseCase casos de uso para notificaciones. A diferencia del
// resto de recursos, las notificaciones no pasan por la matriz: cada usuario
// autenticado ve y gestiona únicamente las suyas.
type NotificacionUseCase struct {
	repo repository.NotificacionRepository
}

// NewNotificacionUseCase construye el caso de uso.
func NewNotificacionUseCase(repo repository.NotificacionRepository) *NotificacionUseCase {
	return &NotificacionUseCase{repo: repo}
}

// Create crea una notificación dirigida a un usuario de la empresa del actor.
// Si no se indica destinatario se notifica al propio actor.
func (uc *NotificacionUseCase) Create(actor *entity.Usuario, in dto.CreateNotificacionRequest) (*dto.NotificacionResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Titulo == "" {
		return nil, domain.NewValidationError("notificacion", "titulo", "es requerido")
	}
	usuarioID := in.UsuarioID
	if usuarioID == "" {
		usuarioID = actor.ID
	}
	n := &entity.Notificacion{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		UsuarioID: usuarioID,
		Titulo:    in.Titulo,
		Mensaje:   in.Mensaje,
		Leida:     false,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNotificacionResponse(n), nil
}

// ListMine lista las notificaciones del propio actor.
func (uc *NotificacionUseCase) ListMine(actor *entity.Usuario, limit, offset int) (*dto.NotificacionListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUsuario(empresaID, actor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificacionResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificacionResponse(n))
	}
	return &dto.NotificacionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarcarLeida marca como leída una notificación del actor. ErrNotFound si la
// notificación no existe o pertenece a otro usuario.
func (uc *NotificacionUseCase) MarcarLeida(actor *entity.Usuario, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil || n.UsuarioID != actor.ID {
		return domain.ErrNotFound
	}
	return uc.repo.MarcarLeida(id)
}

// Delete elimina una notificación del actor. ErrNotFound si no es suya.
func (uc *NotificacionUseCase) Delete(actor *entity.Usuario, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil || n.UsuarioID != actor.ID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toNotificacionResponse(n *entity.Notificacion) *dto.NotificacionResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificacionResponse{
		ID:        n.ID,
		EmpresaID: n.EmpresaID,
		UsuarioID: n.UsuarioID,
		Titulo:    n.Titulo,
		Mensaje:   n.Mensaje,
		Leida:     n.Leida,
		CreatedAt: n.CreatedAt,
	}
}
