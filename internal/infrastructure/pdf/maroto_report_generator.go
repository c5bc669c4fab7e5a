// Package pdf genera la versión imprimible del reporte de conteos físicos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Conteos Físicos + fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Corte | # | Bodega | Producto | Empaque | Unidades   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/Conteo-api/internal/application/usecase"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, rows []*entity.ReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Conteos Físicos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE CONTEOS FÍSICOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados de la tabla de conteos.
func tableHeaderRow() core.Row {
	header := func(label string, width int) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		header("Corte", 1),
		header("#", 1),
		header("Bodega", 3),
		header("Producto", 3),
		header("Empaque", 1),
		header("Unidades", 1),
		header("Usuario", 2),
	)
}

// detailRow: una fila de conteo en la tabla.
func detailRow(r *entity.ReportRow) core.Row {
	cell := func(value string, width int, al align.Type) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 7, Align: al, Top: 1}))
	}
	return row.New(5).Add(
		cell(r.Count.CutOffDate.Format("02/01/2006"), 1, align.Left),
		cell(strconv.Itoa(r.Count.CountNumber), 1, align.Center),
		cell(r.WarehouseName, 3, align.Left),
		cell(r.ProductName, 3, align.Left),
		cell(r.Count.QuantityPackaging.String(), 1, align.Right),
		cell(r.Count.QuantityUnits.String(), 1, align.Right),
		cell(r.UserName, 2, align.Left),
	)
}

// footerRow: total de registros incluidos.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de conteos: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2,
			}),
		),
	)
}
