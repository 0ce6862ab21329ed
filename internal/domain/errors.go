package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrPermissionDenied   = errors.New("acceso denegado por permisos")
	ErrDataAccess         = errors.New("error de acceso a datos")
)

// ValidationError detalla qué campo de una entidad falló la validación de esquema.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: campo %q inválido: %s", e.Entity, e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError construye un error de validación de esquema.
func NewValidationError(entity, field, reason string) error {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}

// DataAccessError envuelve un fallo de transporte/auth del almacén externo.
// La causa original queda disponible vía errors.Unwrap.
type DataAccessError struct {
	Op  string // operación que falló, ej. "insert cliente"
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("acceso a datos (%s): %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrDataAccess).
func (e *DataAccessError) Is(target error) bool { return target == ErrDataAccess }

// NewDataAccessError envuelve la causa de un fallo del almacén externo.
func NewDataAccessError(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// PermissionDeniedError indica qué (recurso, acción) bloqueó la matriz de permisos.
type PermissionDeniedError struct {
	Resource string
	Action   string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permiso denegado: %s.%s", e.Resource, e.Action)
}

// Is permite errors.Is(err, ErrPermissionDenied).
func (e *PermissionDeniedError) Is(target error) bool { return target == ErrPermissionDenied }

// NewPermissionDeniedError construye la denegación para (recurso, acción).
func NewPermissionDeniedError(resource, action string) error {
	return &PermissionDeniedError{Resource: resource, Action: action}
}
