package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// AdjuntoEntrada es el binario de un adjunto recibido por multipart.
type AdjuntoEntrada struct {
	Nombre      string
	ContentType string
	Data        []byte
}

// InteraccionUseCase casos de uso para interacciones con clientes. Las
// interacciones se gobiernan con la entrada "clientes" de la matriz de
// permisos: son parte del historial del cliente.
type InteraccionUseCase struct {
	repo     repository.InteraccionRepository
	clientes repository.ClienteRepository
	adjuntos AlmacenAdjuntos
}

// NewInteraccionUseCase construye el caso de uso.
func NewInteraccionUseCase(
	repo repository.InteraccionRepository,
	clientes repository.ClienteRepository,
	adjuntos AlmacenAdjuntos,
) *InteraccionUseCase {
	return &InteraccionUseCase{repo: repo, clientes: clientes, adjuntos: adjuntos}
}

func tipoInteraccionValido(tipo string) bool {
	switch tipo {
	case entity.InteraccionLlamada, entity.InteraccionCorreo, entity.InteraccionReunion:
		return true
	}
	return false
}

// Create registra una interacción. Si adjunto no es nil, el binario se sube
// al object storage antes de persistir el documento.
func (uc *InteraccionUseCase) Create(ctx context.Context, actor *entity.Usuario, in dto.CreateInteraccionRequest, adjunto *AdjuntoEntrada) (*dto.InteraccionResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.ClienteID == "" {
		return nil, domain.NewValidationError("interaccion", "cliente_id", "es requerido")
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.InteraccionLlamada
	}
	if !tipoInteraccionValido(tipo) {
		return nil, domain.NewValidationError("interaccion", "tipo", "tipo desconocido")
	}
	cliente, err := uc.clientes.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.EmpresaID != empresaID {
		return nil, domain.NewValidationError("interaccion", "cliente_id", "cliente no existe")
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	i := &entity.Interaccion{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		ClienteID: in.ClienteID,
		UsuarioID: actor.ID,
		Tipo:      tipo,
		Notas:     in.Notas,
		Fecha:     fecha,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if adjunto != nil && len(adjunto.Data) > 0 {
		key, url, err := uc.adjuntos.Put(ctx, adjunto.Nombre, adjunto.ContentType, adjunto.Data)
		if err != nil {
			return nil, err
		}
		i.AdjuntoKey = key
		i.AdjuntoURL = url
	}
	if err := uc.repo.Create(i); err != nil {
		// El documento no se persistió: el adjunto ya subido queda huérfano,
		// se intenta limpiar.
		if i.AdjuntoKey != "" {
			if derr := uc.adjuntos.Delete(ctx, i.AdjuntoKey); derr != nil {
				log.Warn().Err(derr).Str("key", i.AdjuntoKey).Msg("no se pudo limpiar adjunto huérfano")
			}
		}
		return nil, err
	}
	return toInteraccionResponse(i), nil
}

// GetByID obtiene una interacción por ID dentro de la empresa del actor.
func (uc *InteraccionUseCase) GetByID(actor *entity.Usuario, id string) (*dto.InteraccionResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	i, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if i == nil || i.EmpresaID != empresaID {
		return nil, nil
	}
	return toInteraccionResponse(i), nil
}

// List lista las interacciones de la empresa del actor.
func (uc *InteraccionUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.InteraccionListResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	return interaccionList(list, limit, offset), nil
}

// ListByCliente lista las interacciones de un cliente de la empresa del actor.
func (uc *InteraccionUseCase) ListByCliente(actor *entity.Usuario, clienteID string, limit, offset int) (*dto.InteraccionListResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCliente(empresaID, clienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	return interaccionList(list, limit, offset), nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la empresa.
func (uc *InteraccionUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateInteraccionRequest) (*dto.InteraccionResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionEditar); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	i, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if i == nil || i.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Tipo != nil {
		if !tipoInteraccionValido(*in.Tipo) {
			return nil, domain.NewValidationError("interaccion", "tipo", "tipo desconocido")
		}
		i.Tipo = *in.Tipo
	}
	if in.Notas != nil {
		i.Notas = *in.Notas
	}
	if in.Fecha != nil {
		i.Fecha = *in.Fecha
	}
	i.UpdatedAt = time.Now()
	if err := uc.repo.Update(i); err != nil {
		return nil, err
	}
	return toInteraccionResponse(i), nil
}

// Delete elimina una interacción y, si tenía adjunto, también el binario del
// object storage. El borrado del adjunto es best-effort: un fallo del storage
// no resucita el documento ya eliminado, se deja constancia en el log.
func (uc *InteraccionUseCase) Delete(ctx context.Context, actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionEliminar); err != nil {
		return err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return err
	}
	i, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if i == nil || i.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if i.AdjuntoKey != "" {
		if err := uc.adjuntos.Delete(ctx, i.AdjuntoKey); err != nil {
			log.Warn().Err(err).Str("key", i.AdjuntoKey).Msg("no se pudo eliminar adjunto")
		}
	}
	return nil
}

func interaccionList(list []*entity.Interaccion, limit, offset int) *dto.InteraccionListResponse {
	items := make([]dto.InteraccionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInteraccionResponse(i))
	}
	return &dto.InteraccionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toInteraccionResponse(i *entity.Interaccion) *dto.InteraccionResponse {
	if i == nil {
		return nil
	}
	return &dto.InteraccionResponse{
		ID:         i.ID,
		EmpresaID:  i.EmpresaID,
		ClienteID:  i.ClienteID,
		UsuarioID:  i.UsuarioID,
		Tipo:       i.Tipo,
		Notas:      i.Notas,
		Fecha:      i.Fecha,
		AdjuntoURL: i.AdjuntoURL,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
