package usecase

import (
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
)

// autorizar aplica la matriz de permisos del actor en la frontera de acceso
// a datos: toda operación de los use cases pasa por aquí antes de tocar el
// repositorio, no solo la UI.
func autorizar(actor *entity.Usuario, recurso, accion string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if !actor.Puede(recurso, accion) {
		return domain.NewPermissionDeniedError(recurso, accion)
	}
	return nil
}

// empresaDe devuelve la empresa del actor. Las operaciones scoped exigen
// que el actor pertenezca a una empresa; un actor sin empresa no puede
// listar ni crear recursos de empresa.
func empresaDe(actor *entity.Usuario) (string, error) {
	if actor == nil {
		return "", domain.ErrUnauthorized
	}
	if actor.EmpresaID == nil || *actor.EmpresaID == "" {
		return "", domain.NewPermissionDeniedError("empresa", "scope")
	}
	return *actor.EmpresaID, nil
}
