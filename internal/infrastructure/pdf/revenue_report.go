// Package pdf genera el reporte imprimible de ingresos mensuales del
// concesionario (tabla Año | Mes | Ingresos | Vehículos + total).
package pdf

import (
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

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 114}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// RevenueReportGenerator genera el PDF del reporte de ingresos usando Maroto v2.
type RevenueReportGenerator struct{}

// NewRevenueReportGenerator construye el generador.
func NewRevenueReportGenerator() *RevenueReportGenerator { return &RevenueReportGenerator{} }

// GenerateRevenueReport genera el PDF y devuelve sus bytes. Los registros
// llegan ya ordenados (año y mes descendentes) desde el ledger.
func (g *RevenueReportGenerator) GenerateRevenueReport(appName string, records []*dto.MonthlyRevenueResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ingresos mensuales", true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(
		col.New(12).Add(
			text.New("Reporte de Ingresos Mensuales", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())

	total := decimal.Zero
	units := 0
	for _, rec := range records {
		m.AddRows(tableDetailRow(rec))
		total = total.Add(rec.Revenue)
		units += rec.VehicleCount
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(total, units))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(2).Add(text.New("Año", header)),
		col.New(4).Add(text.New("Mes", header)),
		col.New(3).Add(text.New("Ingresos", headerRight)),
		col.New(3).Add(text.New("Vehículos", headerRight)),
	)
}

func tableDetailRow(rec *dto.MonthlyRevenueResponse) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", rec.Year), cell)),
		col.New(4).Add(text.New(monthName(rec.Month), cell)),
		col.New(3).Add(text.New("$ "+rec.Revenue.StringFixed(2), cellRight)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", rec.VehicleCount), cellRight)),
	)
}

func totalsRow(total decimal.Decimal, units int) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Top: 1, Align: align.Right}
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
		col.New(3).Add(text.New("$ "+total.StringFixed(2), bold)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", units), bold)),
	)
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("%d", m)
	}
	return monthNames[m-1]
}
