// Package pdf implementa la generación del crachá de visitante imprimible.
//
// Layout de la tarjeta A6 (apaisada):
//
//	┌───────────────────────────────────────┐
//	│  CRACHÁ DE VISITANTE        V12345    │
//	│  ───────────────────────────────────  │
//	│  Nombre del visitante                 │
//	│  Documento · Empresa de origen        │
//	│  Sala (piso) · Responsable            │
//	│  Entrada: 02/01/2006 15:04            │
//	│  Acompañantes: N                      │
//	└───────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appvisit "github.com/jhoicas/portaria-api/internal/application/visit"
	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoBadgeGenerator implementa visit.BadgePDFGenerator.
var _ appvisit.BadgePDFGenerator = (*MarotoBadgeGenerator)(nil)

// MarotoBadgeGenerator implementa visit.BadgePDFGenerator usando Maroto v2.
type MarotoBadgeGenerator struct{}

// NewMarotoBadgeGenerator construye el generador.
func NewMarotoBadgeGenerator() *MarotoBadgeGenerator { return &MarotoBadgeGenerator{} }

// GenerateBadgePDF genera el PDF del crachá y devuelve sus bytes.
func (g *MarotoBadgeGenerator) GenerateBadgePDF(_ context.Context, agg *entity.VisitAggregate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Crachá de Visitante", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(agg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(visitorRows(agg)...)
	m.AddRows(visitRows(agg)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar crachá: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título a la izquierda, código del crachá grande a la derecha.
func headerRow(agg *entity.VisitAggregate) core.Row {
	code := agg.Visit.BadgeCode
	if agg.Badge != nil {
		code = agg.Badge.Code
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CRACHÁ DE VISITANTE", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4,
			}),
		),
		col.New(5).Add(
			text.New(code, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Right, Top: 2,
			}),
		),
	)
}

// visitorRows: nombre en grande, documento y empresa de origen debajo.
func visitorRows(agg *entity.VisitAggregate) []core.Row {
	name, document, origin := "—", "—", "—"
	if agg.Visitor != nil {
		name = agg.Visitor.Name
		document = agg.Visitor.Document
		if agg.Visitor.Company != "" {
			origin = agg.Visitor.Company
		}
	}
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 13, Top: 2}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Documento: %s   |   Empresa: %s", document, origin),
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

// visitRows: sala, responsable, hora de entrada y acompañantes.
func visitRows(agg *entity.VisitAggregate) []core.Row {
	roomLabel := "—"
	if agg.Room != nil {
		roomLabel = agg.Room.Name
		if agg.Room.Floor != "" {
			roomLabel += " (" + agg.Room.Floor + ")"
		}
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Sala: %s   |   Responsable: %s", roomLabel, agg.Visit.Responsible),
				props.Text{Size: 9, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Entrada: "+agg.Visit.EntryTime.Format("02/01/2006 15:04"),
				props.Text{Size: 9, Top: 1}),
		)),
	}
	if n := len(agg.Companions); n > 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Acompañantes: %d", n), props.Text{Size: 9, Top: 1}),
		)))
		for _, c := range agg.Companions {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New("  • "+c.Name+" — "+c.Document,
					props.Text{Size: 8, Color: colorGray, Top: 0.5}),
			)))
		}
	}
	return rows
}
