// Package pdf genera la planilla mensual de afiliaciones de una oficina.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Oficina + Representante  │  Período + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Cédula | Empresa | EPS | Valor | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Bruto / Pagado / N° afiliaciones                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/afiliaciones-api/internal/application/report"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ report.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 220, Green: 230, Blue: 241}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRosterGenerator implementa report.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(_ context.Context, doc report.RosterDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Afiliaciones %s %d", doc.MonthName, doc.Year), true).
		WithAuthor(doc.Office.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(doc.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(Totals(doc.Rows)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar planilla: %w", err)
	}
	return out.GetBytes(), nil
}

// RosterTotals totales del pie de la planilla.
type RosterTotals struct {
	Gross decimal.Decimal
	Paid  decimal.Decimal
	Count int
}

// Totals suma bruto y pagado de las filas.
func Totals(rows []repository.AffiliationDetail) RosterTotals {
	t := RosterTotals{Count: len(rows)}
	for _, r := range rows {
		t.Gross = t.Gross.Add(r.Value)
		if r.PaidStatus == entity.PaymentPaid {
			t.Paid = t.Paid.Add(r.Value)
		}
	}
	return t
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: oficina + representante (izq) y período + fecha de generación (der).
func headerRow(doc report.RosterDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.Office.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Representante: "+nonEmpty(doc.Office.RepresentativeName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLANILLA DE AFILIACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %d", doc.MonthName, doc.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 3, align.Left),
		h("Cédula", 2, align.Left),
		h("Empresa", 2, align.Left),
		h("EPS", 2, align.Left),
		h("Valor", 2, align.Right),
		h("Estado", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRows: una fila por afiliación.
func tableRows(details []repository.AffiliationDetail) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(7).Add(
			cell(d.FullName, 3, align.Left),
			cell(d.Identification, 2, align.Left),
			cell(deref(d.CompanyName), 2, align.Left),
			cell(deref(d.EpsName), 2, align.Left),
			cell("$"+FormatMoney(d.Value), 2, align.Right),
			cell(string(d.PaidStatus), 1, align.Center),
		))
	}
	return result
}

func totalsRow(t RosterTotals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total bruto:"),
			text.New("Total pagado:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("Afiliaciones:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 12}),
		),
		col.New(3).Add(
			value("$"+FormatMoney(t.Gross), 0),
			value("$"+FormatMoney(t.Paid), 6),
			value(strconv.Itoa(t.Count), 12),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return "—"
	}
	return nonEmpty(*s, "—")
}

// FormatMoney redondea a pesos e inserta puntos de miles.
// Ej: 25000 → "25.000", 1000000.4 → "1.000.000"
func FormatMoney(v decimal.Decimal) string {
	s := v.StringFixed(0)
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	n := len(s)
	buf := make([]byte, 0, n+n/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
