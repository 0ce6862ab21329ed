package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para el catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto en el catálogo de la empresa del actor.
func (uc *ProductoUseCase) Create(actor *entity.Usuario, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if err := autorizar(actor, entity.RecursoProductos, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, domain.NewValidationError("producto", "nombre", "es requerido")
	}
	if in.Precio.IsNegative() {
		return nil, domain.NewValidationError("producto", "precio", "no puede ser negativo")
	}
	now := time.Now()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Nombre:      in.Nombre,
		SKU:         in.SKU,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID dentro de la empresa del actor.
func (uc *ProductoUseCase) GetByID(actor *entity.Usuario, id string) (*dto.ProductoResponse, error) {
	if err := autorizar(actor, entity.RecursoProductos, entity.AccionVer); err != nil {
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
	return toProductoResponse(p), nil
}

// List lista los productos de la empresa del actor.
func (uc *ProductoUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.ProductoListResponse, error) {
	if err := autorizar(actor, entity.RecursoProductos, entity.AccionVer); err != nil {
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
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la empresa.
func (uc *ProductoUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if err := autorizar(actor, entity.RecursoProductos, entity.AccionEditar); err != nil {
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
			return nil, domain.NewValidationError("producto", "nombre", "no puede quedar vacío")
		}
		p.Nombre = *in.Nombre
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.NewValidationError("producto", "precio", "no puede ser negativo")
		}
		p.Precio = *in.Precio
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto. ErrNotFound si no existe en la empresa.
func (uc *ProductoUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoProductos, entity.AccionEliminar); err != nil {
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

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		EmpresaID:   p.EmpresaID,
		Nombre:      p.Nombre,
		SKU:         p.SKU,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
