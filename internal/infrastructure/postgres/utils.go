package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grxsoft/crm-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// opCtx crea el contexto con timeout para una operación contra el almacén.
// El vencimiento se reporta como DataAccessError vía dataErr.
func opCtx(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// dataErr envuelve cualquier fallo de transporte/auth del almacén como
// DataAccessError con la causa original.
func dataErr(op string, err error) error {
	return domain.NewDataAccessError(op, err)
}
