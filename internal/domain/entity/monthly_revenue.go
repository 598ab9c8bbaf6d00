package entity

import "github.com/shopspring/decimal"

// MonthlyRevenue es el agregado derivado de ingresos por (año, mes).
// Nunca se edita directamente: lo produce el ledger de ingresos al
// completarse una venta, o la recalculación total.
type MonthlyRevenue struct {
	ID           string
	Year         int
	Month        int // 1–12
	Revenue      decimal.Decimal
	VehicleCount int
}
