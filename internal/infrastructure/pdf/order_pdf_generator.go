// Package pdf implementa el render de la orden de compra para enviar al
// proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del salón + IČO  │  Objednávka + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALÓN: Dirección / Tel / Email                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Množství | Materiál | Balení | Cena                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Nota + total estimado                                      │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 60, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrderPDFGenerator implementa usecase.OrderPDFGenerator usando Maroto v2.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

var _ usecase.OrderPDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// GenerateOrderPDF genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	lines []usecase.OrderPDFLine,
	salon *entity.SalonSettings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Objednávka", true).
		WithAuthor(salon.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, salon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(salonRow(salon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(lines))

	if order.Note != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Poznámka: "+order.Note, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del salón + IČO (izq) y número de orden + fecha (der).
func headerRow(order *entity.Order, salon *entity.SalonSettings) core.Row {
	fecha := order.CreatedAt.Format("02.01.2006")
	name := nonEmpty(salon.Name, "Kadeřnictví")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("IČO: "+nonEmpty(salon.ICO, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("OBJEDNÁVKA MATERIÁLU", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Datum: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// salonRow: datos de contacto del salón.
func salonRow(salon *entity.SalonSettings) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ODBĚRATEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Adresa: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(salon.Address, "—"),
				nonEmpty(salon.Phone, "—"),
				nonEmpty(salon.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Množství", 2, align.Center),
		h("Materiál", 6, align.Left),
		h("Balení", 2, align.Center),
		h("Cena", 2, align.Right),
	)
}

// tableLineRows: una fila por línea de la orden.
func tableLineRows(lines []usecase.OrderPDFLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		price := "—"
		if l.Price != nil {
			price = l.Price.StringFixed(2) + " Kč"
		}
		baleni := "—"
		if l.Unit != "" && l.Unit != entity.UnitPiece {
			baleni = l.PackageSize.String() + " " + l.Unit
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.String()+" ks",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.MaterialName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				baleni,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				price,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total estimado de las líneas con precio.
func totalRow(lines []usecase.OrderPDFLine) core.Row {
	total := decimal.Zero
	for _, l := range lines {
		if l.Price != nil {
			total = total.Add(l.Price.Mul(l.Quantity))
		}
	}
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("Celkem:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(total.StringFixed(2)+" Kč", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1,
			Color: colorPrimary, Top: 2,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID acorta el uuid de la orden para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}
