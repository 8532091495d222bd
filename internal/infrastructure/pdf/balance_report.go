// Package pdf renders the dashboard balance report as a printable document.
//
// A4 layout:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: title + report period + scope        │
//	│  ───────────────────────────────────────────  │
//	│  METRICS: opening / movement / closing block  │
//	│  ───────────────────────────────────────────  │
//	│  TABLE: per base and equipment type snapshot  │
//	└───────────────────────────────────────────────┘
package pdf

import (
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 27, Green: 54, Blue: 93}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// quantities print with thousands separators
var numPrinter = message.NewPrinter(language.English)

// BalanceReportGenerator renders balance reports with Maroto v2.
type BalanceReportGenerator struct{}

// NewBalanceReportGenerator builds the generator.
func NewBalanceReportGenerator() *BalanceReportGenerator { return &BalanceReportGenerator{} }

// Generate renders the report and returns the PDF bytes. scopeLabel names the
// effective base filter ("All bases" or a base name); items is the inventory
// snapshot to print below the metrics.
func (g *BalanceReportGenerator) Generate(report *dto.BalanceReport, scopeLabel string, items []dto.InventorySummaryItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Asset Balance Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, scopeLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRows(report.Metrics)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report *dto.BalanceReport, scopeLabel string) core.Row {
	period := fmt.Sprintf("%s to %s", report.Filters.StartDate, report.Filters.EndDate)
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ASSET BALANCE REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Scope: "+scopeLabel, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Period: "+period, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generated "+time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func metricsRows(m dto.BalanceMetrics) []core.Row {
	metric := func(label string, value int64) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(numPrinter.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6, Color: colorPrimary,
			}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			metric("Opening Balance", m.OpeningBalance),
			metric("Net Movement", m.NetMovement),
			metric("Closing Balance", m.ClosingBalance),
			metric("Expended", m.Expended),
		),
		row.New(14).Add(
			metric("Purchases", m.Purchases),
			metric("Transfers In", m.TransferIn),
			metric("Transfers Out", m.TransferOut),
			metric("Assigned", m.Assigned),
		),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Base", 3, align.Left),
		h("Equipment", 4, align.Left),
		h("Category", 2, align.Left),
		h("Quantity", 2, align.Right),
		h("Unit", 1, align.Left),
	)
}

func tableRows(items []dto.InventorySummaryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(item.BaseName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(item.EquipmentName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(item.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(numPrinter.Sprintf("%d", item.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(item.UnitOfMeasure, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}
