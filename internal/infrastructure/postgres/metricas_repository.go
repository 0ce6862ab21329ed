package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grxsoft/crm-api/internal/domain/repository"
)

var _ repository.MetricasRepository = (*MetricasRepo)(nil)

// Colecciones conocidas del almacén, en el orden en que se reportan.
// Mantener en sincronía con las migraciones.
var colecciones = []string{
	"usuarios", "empresas", "clientes", "proyectos", "oportunidades",
	"interacciones", "tareas", "productos", "notificaciones",
}

// MetricasRepo consultas de solo lectura para el dashboard y verifydata.
type MetricasRepo struct {
	pool *pgxpool.Pool
}

// NewMetricasRepository construye el adaptador de métricas.
func NewMetricasRepository(pool *pgxpool.Pool) *MetricasRepo {
	return &MetricasRepo{pool: pool}
}

// CountCollections cuenta los documentos de cada colección conocida.
// empresaID vacío cuenta todo el almacén; con empresaID las colecciones
// scoped filtran por empresa_id (empresas filtra por su propio id).
func (r *MetricasRepo) CountCollections(ctx context.Context, empresaID string) ([]repository.ConteoColeccion, error) {
	out := make([]repository.ConteoColeccion, 0, len(colecciones))
	for _, tabla := range colecciones {
		var (
			query string
			args  []any
		)
		switch {
		case empresaID == "":
			query = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tabla)
		case tabla == "empresas":
			query = `SELECT COUNT(*) FROM empresas WHERE id = $1`
			args = append(args, empresaID)
		default:
			query = fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE empresa_id = $1`, tabla)
			args = append(args, empresaID)
		}
		var total int64
		if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
			return nil, dataErr("count "+tabla, err)
		}
		out = append(out, repository.ConteoColeccion{Coleccion: tabla, Total: total})
	}
	return out, nil
}

// PipelinePorEtapa agrega cantidad y valor total de oportunidades por etapa.
func (r *MetricasRepo) PipelinePorEtapa(ctx context.Context, empresaID string) ([]repository.EtapaPipelineResult, error) {
	const query = `
		SELECT etapa, COUNT(*) AS cantidad, COALESCE(SUM(valor), 0) AS valor_total
		FROM oportunidades
		WHERE empresa_id = $1
		GROUP BY etapa
		ORDER BY MIN(created_at)`
	rows, err := r.pool.Query(ctx, query, empresaID)
	if err != nil {
		return nil, dataErr("pipeline por etapa", err)
	}
	defer rows.Close()
	var out []repository.EtapaPipelineResult
	for rows.Next() {
		var e repository.EtapaPipelineResult
		if err := rows.Scan(&e.Etapa, &e.Cantidad, &e.ValorTotal); err != nil {
			return nil, dataErr("scan etapa pipeline", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("rows pipeline", err)
	}
	return out, nil
}
