// Package pdf genera el resumen PDF del pipeline comercial (una página A4:
// encabezado con la empresa, tabla de etapas con cantidad y valor, y
// conteos generales por colección).
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/grxsoft/crm-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReporteGenerator genera el resumen del pipeline usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarResumen genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarResumen(
	_ context.Context,
	empresaNombre string,
	etapas []repository.EtapaPipelineResult,
	conteos []repository.ConteoColeccion,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen CRM", true).
		WithAuthor(empresaNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(empresaNombre))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(seccionRow("Pipeline de oportunidades"))
	m.AddRows(etapaHeaderRow())
	for _, e := range etapas {
		m.AddRows(etapaRow(e))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(seccionRow("Registros por colección"))
	for _, c := range conteos {
		m.AddRows(conteoRow(c))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF resumen: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(empresa string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(empresa, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Resumen del CRM", props.Text{Top: 6, Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02"), props.Text{Size: 9, Align: align.Right}),
		),
	)
}

func seccionRow(titulo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(titulo, props.Text{Top: 2, Size: 11, Style: fontstyle.Bold})),
	)
}

func etapaHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New("Etapa", props.Text{Style: fontstyle.Bold})),
		col.New(3).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New("Valor", props.Text{Style: fontstyle.Bold, Align: align.Right})),
	)
}

func etapaRow(e repository.EtapaPipelineResult) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(e.Etapa)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", e.Cantidad), props.Text{Align: align.Right})),
		col.New(3).Add(text.New(e.ValorTotal.StringFixed(2), props.Text{Align: align.Right})),
	)
}

func conteoRow(c repository.ConteoColeccion) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(c.Coleccion)),
		col.New(6).Add(text.New(fmt.Sprintf("%d", c.Total), props.Text{Align: align.Right})),
	)
}
