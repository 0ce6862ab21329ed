package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// OportunidadUseCase casos de uso CRUD para oportunidades del pipeline.
type OportunidadUseCase struct {
	repo repository.OportunidadRepository
}

// NewOportunidadUseCase construye el caso de uso.
func NewOportunidadUseCase(repo repository.OportunidadRepository) *OportunidadUseCase {
	return &OportunidadUseCase{repo: repo}
}

// Create crea una oportunidad scoped a la empresa del actor.
func (uc *OportunidadUseCase) Create(actor *entity.Usuario, in dto.CreateOportunidadRequest) (*dto.OportunidadResponse, error) {
	if err := autorizar(actor, entity.RecursoOportunidades, entity.AccionCrear); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, domain.NewValidationError("oportunidad", "nombre", "es requerido")
	}
	if in.ClienteID == "" {
		return nil, domain.NewValidationError("oportunidad", "cliente_id", "es requerido")
	}
	etapa := in.Etapa
	if etapa == "" {
		etapa = entity.EtapaProspecto
	}
	if !entity.EtapaValida(etapa) {
		return nil, domain.NewValidationError("oportunidad", "etapa", "etapa desconocida")
	}
	if in.Probabilidad < 0 || in.Probabilidad > 100 {
		return nil, domain.NewValidationError("oportunidad", "probabilidad", "debe estar entre 0 y 100")
	}
	if in.Valor.IsNegative() {
		return nil, domain.NewValidationError("oportunidad", "valor", "no puede ser negativo")
	}
	now := time.Now()
	o := &entity.Oportunidad{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		ClienteID:    in.ClienteID,
		Nombre:       in.Nombre,
		Etapa:        etapa,
		Valor:        in.Valor,
		Probabilidad: in.Probabilidad,
		FechaCierre:  in.FechaCierre,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return toOportunidadResponse(o), nil
}

// GetByID obtiene una oportunidad por ID dentro de la empresa del actor.
func (uc *OportunidadUseCase) GetByID(actor *entity.Usuario, id string) (*dto.OportunidadResponse, error) {
	if err := autorizar(actor, entity.RecursoOportunidades, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.EmpresaID != empresaID {
		return nil, nil
	}
	return toOportunidadResponse(o), nil
}

// List lista las oportunidades de la empresa del actor.
func (uc *OportunidadUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.OportunidadListResponse, error) {
	if err := autorizar(actor, entity.RecursoOportunidades, entity.AccionVer); err != nil {
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
	items := make([]dto.OportunidadResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOportunidadResponse(o))
	}
	return &dto.OportunidadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial. ErrNotFound si el ID no existe en la empresa.
func (uc *OportunidadUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateOportunidadRequest) (*dto.OportunidadResponse, error) {
	if err := autorizar(actor, entity.RecursoOportunidades, entity.AccionEditar); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.NewValidationError("oportunidad", "nombre", "no puede quedar vacío")
		}
		o.Nombre = *in.Nombre
	}
	if in.Etapa != nil {
		if !entity.EtapaValida(*in.Etapa) {
			return nil, domain.NewValidationError("oportunidad", "etapa", "etapa desconocida")
		}
		o.Etapa = *in.Etapa
	}
	if in.Valor != nil {
		if in.Valor.IsNegative() {
			return nil, domain.NewValidationError("oportunidad", "valor", "no puede ser negativo")
		}
		o.Valor = *in.Valor
	}
	if in.Probabilidad != nil {
		if *in.Probabilidad < 0 || *in.Probabilidad > 100 {
			return nil, domain.NewValidationError("oportunidad", "probabilidad", "debe estar entre 0 y 100")
		}
		o.Probabilidad = *in.Probabilidad
	}
	if in.FechaCierre != nil {
		o.FechaCierre = in.FechaCierre
	}
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(o); err != nil {
		return nil, err
	}
	return toOportunidadResponse(o), nil
}

// Delete elimina una oportunidad. ErrNotFound si no existe en la empresa.
func (uc *OportunidadUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoOportunidades, entity.AccionEliminar); err != nil {
		return err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return err
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil || o.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOportunidadResponse(o *entity.Oportunidad) *dto.OportunidadResponse {
	if o == nil {
		return nil
	}
	return &dto.OportunidadResponse{
		ID:           o.ID,
		EmpresaID:    o.EmpresaID,
		ClienteID:    o.ClienteID,
		Nombre:       o.Nombre,
		Etapa:        o.Etapa,
		Valor:        o.Valor,
		Probabilidad: o.Probabilidad,
		FechaCierre:  o.FechaCierre,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
