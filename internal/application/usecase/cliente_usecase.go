package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/pkg/texto"
)

// ClienteUseCase casos de uso CRUD para clientes, con búsqueda por nombre
// sin tildes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente scoped a la empresa del actor.
func (uc *ClienteUseCase) Create(actor *entity.Usuario, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, domain.NewValidationError("cliente", "nombre", "es requerido")
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Ciudad:    in.Ciudad,
		Notas:     in.Notas,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe o si
// pertenece a otra empresa (la frontera multi-tenant no filtra registros
// ajenos, los oculta).
func (uc *ClienteUseCase) GetByID(actor *entity.Usuario, id string) (*dto.ClienteResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.EmpresaID != empresaID {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// List lista los clientes de la empresa del actor.
func (uc *ClienteUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.ClienteListResponse, error) {
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
	return clienteList(list, limit, offset), nil
}

// Search busca clientes por nombre, ignorando tildes y mayúsculas.
func (uc *ClienteUseCase) Search(actor *entity.Usuario, q string, limit, offset int) (*dto.ClienteListResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.SearchByEmpresa(empresaID, texto.Normalizar(q), limit, offset)
	if err != nil {
		return nil, err
	}
	return clienteList(list, limit, offset), nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la
// empresa del actor.
func (uc *ClienteUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionEditar); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.NewValidationError("cliente", "nombre", "no puede quedar vacío")
		}
		c.Nombre = *in.Nombre
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Ciudad != nil {
		c.Ciudad = *in.Ciudad
	}
	if in.Notas != nil {
		c.Notas = *in.Notas
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente. ErrNotFound si no existe en la empresa del actor.
func (uc *ClienteUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoClientes, entity.AccionEliminar); err != nil {
		return err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return err
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil || c.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func clienteList(list []*entity.Cliente, limit, offset int) *dto.ClienteListResponse {
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		EmpresaID: c.EmpresaID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Ciudad:    c.Ciudad,
		Notas:     c.Notas,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
