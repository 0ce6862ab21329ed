package usecase

import (
	"context"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
)

// MetricasUseCase consultas de lectura para el dashboard y para la
// verificación del almacén de datos.
type MetricasUseCase struct {
	repo repository.MetricasRepository
}

// NewMetricasUseCase construye el caso de uso.
func NewMetricasUseCase(repo repository.MetricasRepository) *MetricasUseCase {
	return &MetricasUseCase{repo: repo}
}

// Dashboard devuelve los conteos por colección y el agregado del pipeline
// para la empresa del actor. Requiere reportes.ver.
func (uc *MetricasUseCase) Dashboard(ctx context.Context, actor *entity.Usuario) (*dto.DashboardResponse, error) {
	if err := autorizar(actor, entity.RecursoReportes, entity.AccionVer); err != nil {
		return nil, err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, err
	}
	conteos, err := uc.repo.CountCollections(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	pipeline, err := uc.repo.PipelinePorEtapa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardResponse{
		Conteos:  toConteosDTO(conteos),
		Pipeline: make([]dto.EtapaPipelineDTO, 0, len(pipeline)),
	}
	for _, e := range pipeline {
		resp.Pipeline = append(resp.Pipeline, dto.EtapaPipelineDTO{
			Etapa:      e.Etapa,
			Cantidad:   e.Cantidad,
			ValorTotal: e.ValorTotal,
		})
	}
	return resp, nil
}

// VerificarColecciones cuenta los documentos de todas las colecciones del
// almacén, sin filtro de empresa. No lleva actor: lo consume el script de
// verificación, que corre fuera de la API con acceso directo a la DB.
func (uc *MetricasUseCase) VerificarColecciones(ctx context.Context) ([]dto.ConteoColeccionDTO, error) {
	conteos, err := uc.repo.CountCollections(ctx, "")
	if err != nil {
		return nil, err
	}
	return toConteosDTO(conteos), nil
}

func toConteosDTO(conteos []repository.ConteoColeccion) []dto.ConteoColeccionDTO {
	out := make([]dto.ConteoColeccionDTO, 0, len(conteos))
	for _, c := range conteos {
		out = append(out, dto.ConteoColeccionDTO{
			Coleccion:  c.Coleccion,
			Total:      c.Total,
			TieneDatos: c.Total > 0,
		})
	}
	return out
}
