package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// TareaUseCase casos de uso CRUD para tareas.
type TareaUseCase struct {
	repo repository.TareaRepository
}

// NewTareaUseCase construye el caso de uso.
func NewTareaUseCase(repo repository.TareaRepository) *TareaUseCase {
	return &TareaUseCase{repo: repo}
}

func estadoTareaValido(estado string) bool {
	switch estado {
	case entity.TareaPendiente, entity.TareaEnCurso, entity.TareaCompletada:
		return true
	}
	return false
}

func prioridadValida(prioridad string) bool {
	switch prioridad {
	case entity.PrioridadBaja, entity.PrioridadMedia, entity.PrioridadAlta:
		return true
	}
	return false
}

// Create crea una tarea. Si no se indica usuario asignado, la tarea queda
// asignada al propio actor.
func (uc *TareaUseCase) Create(actor *entity.Usuario, in dto.CreateTareaRequest) (*dto.TareaResponse, error) {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Titulo == "" {
		return nil, domain.NewValidationError("tarea", "titulo", "es requerido")
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.TareaPendiente
	}
	if !estadoTareaValido(estado) {
		return nil, domain.NewValidationError("tarea", "estado", "estado desconocido")
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	if !prioridadValida(prioridad) {
		return nil, domain.NewValidationError("tarea", "prioridad", "prioridad desconocida")
	}
	usuarioID := in.UsuarioID
	if usuarioID == "" {
		usuarioID = actor.ID
	}
	now := time.Now()
	t := &entity.Tarea{
		ID:               uuid.New().String(),
		EmpresaID:        empresaID,
		UsuarioID:        usuarioID,
		Titulo:           in.Titulo,
		Descripcion:      in.Descripcion,
		Estado:           estado,
		Prioridad:        prioridad,
		FechaVencimiento: in.FechaVencimiento,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTareaResponse(t), nil
}

// GetByID obtiene una tarea por ID dentro de la empresa del actor.
func (uc *TareaUseCase) GetByID(actor *entity.Usuario, id string) (*dto.TareaResponse, error) {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.EmpresaID != empresaID {
		return nil, nil
	}
	return toTareaResponse(t), nil
}

// List lista las tareas de la empresa del actor.
func (uc *TareaUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.TareaListResponse, error) {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionVer); err != nil {
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
	return tareaList(list, limit, offset), nil
}

// ListMine lista las tareas asignadas al propio actor.
func (uc *TareaUseCase) ListMine(actor *entity.Usuario, limit, offset int) (*dto.TareaListResponse, error) {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUsuario(empresaID, actor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return tareaList(list, limit, offset), nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la empresa.
func (uc *TareaUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateTareaRequest) (*dto.TareaResponse, error) {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionEditar); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, domain.NewValidationError("tarea", "titulo", "no puede quedar vacío")
		}
		t.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		t.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		if !estadoTareaValido(*in.Estado) {
			return nil, domain.NewValidationError("tarea", "estado", "estado desconocido")
		}
		t.Estado = *in.Estado
	}
	if in.Prioridad != nil {
		if !prioridadValida(*in.Prioridad) {
			return nil, domain.NewValidationError("tarea", "prioridad", "prioridad desconocida")
		}
		t.Prioridad = *in.Prioridad
	}
	if in.UsuarioID != nil {
		t.UsuarioID = *in.UsuarioID
	}
	if in.FechaVencimiento != nil {
		t.FechaVencimiento = in.FechaVencimiento
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTareaResponse(t), nil
}

// Delete elimina una tarea. ErrNotFound si no existe en la empresa.
func (uc *TareaUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoTareas, entity.AccionEliminar); err != nil {
		return err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return err
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil || t.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func tareaList(list []*entity.Tarea, limit, offset int) *dto.TareaListResponse {
	items := make([]dto.TareaResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTareaResponse(t))
	}
	return &dto.TareaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toTareaResponse(t *entity.Tarea) *dto.TareaResponse {
	if t == nil {
		return nil
	}
	return &dto.TareaResponse{
		ID:               t.ID,
		EmpresaID:        t.EmpresaID,
		UsuarioID:        t.UsuarioID,
		Titulo:           t.Titulo,
		Descripcion:      t.Descripcion,
		Estado:           t.Estado,
		Prioridad:        t.Prioridad,
		FechaVencimiento: t.FechaVencimiento,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
