package export

// Hoja de carga imprimible (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HOJA DE CARGA          │  Fecha + N° de carga              │
//	│  VEHÍCULO: marca modelo placa  │  CARGADO POR: usuario      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Presentación | Rubro | Precio | Cant | $ │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades / valor                                   │
//	│  FIRMAS: entrega / recibe                                    │
//	└─────────────────────────────────────────────────────────────┘

import (
	"fmt"
	"strconv"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// renderPDF genera la hoja de carga y devuelve sus bytes.
func renderPDF(load *entity.Load) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de carga "+load.Vehicle.Plate, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(load))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(load))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(load.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(load))
	m.AddRows(row.New(20))
	m.AddRows(signaturesRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(load *entity.Load) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("HOJA DE CARGA", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+load.Date.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Carga N° "+load.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func partiesRow(load *entity.Load) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("VEHÍCULO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(load.Vehicle.Brand+" "+load.Vehicle.Model, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Placa: "+load.Vehicle.Plate, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("CARGADO POR", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(userDescription(load.User), props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Presentación", 2, align.Left),
		h("Rubro / Segmento", 3, align.Left),
		h("Precio USD", 1, align.Right),
		h("Cant.", 1, align.Center),
		h("Subtotal", 2, align.Right),
	)
}

func tableRows(lines []entity.LoadLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			cell(l.Name, 3, align.Left),
			cell(l.Presentation, 2, align.Left),
			cell(rubroSegmento(l.Rubro, l.Segmento), 3, align.Left),
			cell(money(l.Price), 1, align.Right),
			cell(strconv.FormatInt(l.Quantity, 10), 1, align.Center),
			cell(money(l.Subtotal()), 2, align.Right),
		))
	}
	return result
}

func totalsRow(load *entity.Load) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			text.New("Valor total:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			text.New(strconv.FormatInt(load.TotalUnits(), 10), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(money(load.TotalValue()), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6}),
		),
	)
}

func signaturesRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 5, Color: colorGray}),
		)
	}
	return row.New(12).Add(sig("Entrega (bodega)"), col.New(2), sig("Recibe (conductor)"))
}

func rubroSegmento(rubro, segmento string) string {
	if segmento == "" {
		return rubro
	}
	return rubro + " / " + segmento
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
