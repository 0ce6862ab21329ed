package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// EmpresaUseCase casos de uso CRUD para empresas.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una empresa.
func (uc *EmpresaUseCase) Create(actor *entity.Usuario, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := autorizar(actor, entity.RecursoEmpresas, entity.AccionCrear); err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, domain.NewValidationError("empresa", "nombre", "es requerido")
	}
	now := time.Now()
	e := &entity.Empresa{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		NIT:       in.NIT,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmpresaResponse(e), nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (uc *EmpresaUseCase) GetByID(actor *entity.Usuario, id string) (*dto.EmpresaResponse, error) {
	if err := autorizar(actor, entity.RecursoEmpresas, entity.AccionVer); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmpresaResponse(e), nil
}

// List lista todas las empresas con paginación.
func (uc *EmpresaUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.EmpresaListResponse, error) {
	if err := autorizar(actor, entity.RecursoEmpresas, entity.AccionVer); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. ErrNotFound si el ID no existe.
func (uc *EmpresaUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := autorizar(actor, entity.RecursoEmpresas, entity.AccionEditar); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.NewValidationError("empresa", "nombre", "no puede quedar vacío")
		}
		e.Nombre = *in.Nombre
	}
	if in.NIT != nil {
		e.NIT = *in.NIT
	}
	if in.Direccion != nil {
		e.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		e.Telefono = *in.Telefono
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Activo != nil {
		e.Activo = *in.Activo
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmpresaResponse(e), nil
}

// Delete elimina una empresa por ID. ErrNotFound si no existe.
func (uc *EmpresaUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoEmpresas, entity.AccionEliminar); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:        e.ID,
		Nombre:    e.Nombre,
		NIT:       e.NIT,
		Direccion: e.Direccion,
		Telefono:  e.Telefono,
		Email:     e.Email,
		Activo:    e.Activo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
