package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// ProyectoUseCase casos de uso CRUD para proyectos.
type ProyectoUseCase struct {
	repo repository.ProyectoRepository
}

// NewProyectoUseCase construye el caso de uso.
func NewProyectoUseCase(repo repository.ProyectoRepository) *ProyectoUseCase {
	return &ProyectoUseCase{repo: repo}
}

func estadoProyectoValido(estado string) bool {
	return estado == entity.ProyectoActivo || estado == entity.ProyectoPausado || estado == entity.ProyectoFinalizado
}

// Create crea un proyecto scoped a la empresa del actor.
func (uc *ProyectoUseCase) Create(actor *entity.Usuario, in dto.CreateProyectoRequest) (*dto.ProyectoResponse, error) {
	if err := autorizar(actor, entity.RecursoProyectos, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, domain.NewValidationError("proyecto", "nombre", "es requerido")
	}
	if in.ClienteID == "" {
		return nil, domain.NewValidationError("proyecto", "cliente_id", "es requerido")
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ProyectoActivo
	}
	if !estadoProyectoValido(estado) {
		return nil, domain.NewValidationError("proyecto", "estado", "estado desconocido")
	}
	now := time.Now()
	p := &entity.Proyecto{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		ClienteID:   in.ClienteID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      estado,
		FechaInicio: in.FechaInicio,
		FechaFin:    in.FechaFin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// GetByID obtiene un proyecto por ID dentro de la empresa del actor.
func (uc *ProyectoUseCase) GetByID(actor *entity.Usuario, id string) (*dto.ProyectoResponse, error) {
	if err := autorizar(actor, entity.RecursoProyectos, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.EmpresaID != empresaID {
		return nil, nil
	}
	return toProyectoResponse(p), nil
}

// List lista los proyectos de la empresa del actor.
func (uc *ProyectoUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.ProyectoListResponse, error) {
	if err := autorizar(actor, entity.RecursoProyectos, entity.AccionVer); err != nil {
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
	items := make([]dto.ProyectoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProyectoResponse(p))
	}
	return &dto.ProyectoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la empresa.
func (uc *ProyectoUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateProyectoRequest) (*dto.ProyectoResponse, error) {
	if err := autorizar(actor, entity.RecursoProyectos, entity.AccionEditar); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.NewValidationError("proyecto", "nombre", "no puede quedar vacío")
		}
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		if !estadoProyectoValido(*in.Estado) {
			return nil, domain.NewValidationError("proyecto", "estado", "estado desconocido")
		}
		p.Estado = *in.Estado
	}
	if in.FechaInicio != nil {
		p.FechaInicio = in.FechaInicio
	}
	if in.FechaFin != nil {
		p.FechaFin = in.FechaFin
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// Delete elimina un proyecto. ErrNotFound si no existe en la empresa.
func (uc *ProyectoUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoProyectos, entity.AccionEliminar); err != nil {
		return err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil || p.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProyectoResponse{
		ID:          p.ID,
		EmpresaID:   p.EmpresaID,
		ClienteID:   p.ClienteID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Estado:      p.Estado,
		FechaInicio: p.FechaInicio,
		FechaFin:    p.FechaFin,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
