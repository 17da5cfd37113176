// Package pdf renders the warehouse turnover report with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: title + report window                              │
//	│  ───────────────────────────────────────────────────────── │
//	│  per domain:                                                │
//	│    section title                                            │
//	│    TABLE: Produkt | Kategoria | Jedn. | Dostawy | Zużycie | │
//	│           Obrót | Stan                                      │
//	│  ───────────────────────────────────────────────────────── │
//	│  FOOTER: generation timestamp                               │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/hutecki/bankiety-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// domainTitles maps domain keys to report section headings.
var domainTitles = map[string]string{
	"alkohole": "Alkohole",
	"naciagi":  "Naciągi",
	"suchy":    "Magazyn suchy",
}

// MarotoReportGenerator implements report.PDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateTurnoverPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateTurnoverPDF(_ context.Context, report *dto.TurnoverReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Raport obrotów magazynowych", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, d := range report.Domains {
		m.AddRows(line.NewRow(2))
		m.AddRows(domainTitleRow(d.Domain))
		m.AddRows(tableHeaderRow())
		for _, r := range tableProductRows(d.Products) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: report title (left) and date window (right).
func headerRow(report *dto.TurnoverReportResponse) core.Row {
	window := fmt.Sprintf("%s — %s",
		report.From.Format("02.01.2006"), report.To.Format("02.01.2006"))

	return row.New(14).Add(
		col.New(7).Add(
			text.New("RAPORT OBROTÓW MAGAZYNOWYCH", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Okres raportu", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(window, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// domainTitleRow: one section heading per warehouse domain.
func domainTitleRow(domain string) core.Row {
	title, ok := domainTitles[domain]
	if !ok {
		title = domain
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
		}),
	))
}

// tableHeaderRow: column headings of the per-product table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produkt", 4, align.Left),
		h("Kategoria", 2, align.Left),
		h("Jedn.", 1, align.Center),
		h("Dostawy", 1, align.Right),
		h("Zużycie", 1, align.Right),
		h("Obrót", 1, align.Right),
		h("Stan", 2, align.Right),
	)
}

// tableProductRows: one row per product of a domain section.
func tableProductRows(products []dto.ProductTurnoverDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		name := p.ProductName
		if p.Subcategory != "" {
			name = fmt.Sprintf("%s (%s)", p.ProductName, p.Subcategory)
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Color: colorGray})),
			col.New(1).Add(text.New(p.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(p.Delivered.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(p.Used.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(p.Turnover.StringFixed(2),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(p.Current.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// footerRow: generation timestamp.
func footerRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Wygenerowano: "+time.Now().Format("02.01.2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
	))
}
