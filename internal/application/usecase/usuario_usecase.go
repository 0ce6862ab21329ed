package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// UsuarioUseCase aplica reglas de negocio para usuarios: hash de password,
// unicidad de email y aprovisionamiento de la matriz de permisos.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario: valida el esquema, hashea el password con bcrypt,
// aplica defaults (activo=true, rol estandar, matriz por rol) y persiste.
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UsuarioUseCase) Create(actor *entity.Usuario, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := autorizar(actor, entity.RecursoUsuarios, entity.AccionCrear); err != nil {
		return nil, err
	}
	u, err := NuevoUsuario(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// NuevoUsuario valida el esquema y construye la entidad con defaults. Lo
// comparten el endpoint protegido y los scripts de administración (que no
// tienen actor).
func NuevoUsuario(in dto.CreateUsuarioRequest) (*entity.Usuario, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if in.Nombre == "" {
		return nil, domain.NewValidationError("usuario", "nombre", "es requerido")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("usuario", "email", "email inválido")
	}
	if len(in.Password) < 8 {
		return nil, domain.NewValidationError("usuario", "password", "mínimo 8 caracteres")
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEstandar
	}
	if rol != entity.RolAdministrador && rol != entity.RolEstandar {
		return nil, domain.NewValidationError("usuario", "rol", "rol desconocido")
	}
	permisos := in.Permisos
	if permisos == nil {
		if rol == entity.RolAdministrador {
			permisos = entity.MatrizAdministrador()
		} else {
			permisos = entity.MatrizPermisos{}
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        email,
		Telefono:     in.Telefono,
		Rol:          rol,
		EmpresaID:    in.EmpresaID,
		EquipoID:     in.EquipoID,
		PasswordHash: string(hash),
		Activo:       true,
		Permisos:     permisos,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(actor *entity.Usuario, id string) (*dto.UsuarioResponse, error) {
	if err := autorizar(actor, entity.RecursoUsuarios, entity.AccionVer); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return ToUsuarioResponse(u), nil
}

// List lista los usuarios de la empresa del actor.
func (uc *UsuarioUseCase) List(actor *entity.Usuario, limit, offset int) (*dto.UsuarioListResponse, error) {
	if err := autorizar(actor, entity.RecursoUsuarios, entity.AccionVer); err != nil {
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
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial: solo los campos presentes se aplican.
// ErrNotFound si el ID no existe.
func (uc *UsuarioUseCase) Update(actor *entity.Usuario, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := autorizar(actor, entity.RecursoUsuarios, entity.AccionEditar); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.NewValidationError("usuario", "nombre", "no puede quedar vacío")
		}
		u.Nombre = *in.Nombre
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	if in.Rol != nil {
		if *in.Rol != entity.RolAdministrador && *in.Rol != entity.RolEstandar {
			return nil, domain.NewValidationError("usuario", "rol", "rol desconocido")
		}
		u.Rol = *in.Rol
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	if in.Permisos != nil {
		u.Permisos = *in.Permisos
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Desactivar marca el usuario como inactivo (el patrón observado es
// desactivación, no borrado duro).
func (uc *UsuarioUseCase) Desactivar(actor *entity.Usuario, id string) error {
	activo := false
	_, err := uc.Update(actor, id, dto.UpdateUsuarioRequest{Activo: &activo})
	return err
}

// Delete elimina un usuario por ID. ErrNotFound si no existe.
func (uc *UsuarioUseCase) Delete(actor *entity.Usuario, id string) error {
	if err := autorizar(actor, entity.RecursoUsuarios, entity.AccionEliminar); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ToUsuarioResponse convierte la entidad a DTO de salida (sin hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Rol:       u.Rol,
		EmpresaID: u.EmpresaID,
		EquipoID:  u.EquipoID,
		Activo:    u.Activo,
		Permisos:  u.Permisos,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
