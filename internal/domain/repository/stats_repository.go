package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	CountVehicles(ctx context.Context) (int, error)
	CountVehiclesByStatus(ctx context.Context, status string) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	CountAppointments(ctx context.Context) (int, error)
	// CountUpcomingAppointments cuenta citas con status=scheduled y fecha futura.
	CountUpcomingAppointments(ctx context.Context) (int, error)
	// CountSales cuenta las citas que califican como venta.
	CountSales(ctx context.Context) (int, error)
	// MonthlyRevenue devuelve los ingresos acumulados del período, cero si
	// no hay registro.
	MonthlyRevenue(ctx context.Context, year, month int) (decimal.Decimal, error)
	// RecentSales devuelve hasta limit ventas, más recientes primero.
	RecentSales(ctx context.Context, limit int) ([]SaleRecord, error)
}
