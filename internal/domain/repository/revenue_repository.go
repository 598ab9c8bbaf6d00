package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para el ledger de
// ingresos mensuales. La única escritura legítima es Upsert (acumular
// una venta) o la reconstrucción total DeleteAll + RebuildFromAppointments.
type RevenueRepository interface {
	// Upsert acumula amount sobre el registro (year, month): lo crea con
	// revenue=amount y vehicle_count=1 si no existe, o incrementa ambos.
	// La implementación debe ser atómica: dos ventas concurrentes del
	// mismo mes no pueden perder incrementos.
	Upsert(ctx context.Context, year, month int, amount decimal.Decimal) error

	// DeleteAll vacía el ledger. Solo lo usa la recalculación.
	DeleteAll(ctx context.Context) error

	// RebuildFromAppointments reconstruye el ledger agrupando las citas
	// que califican como venta por (año, mes) de appointment_date,
	// sumando el precio del vehículo y contando filas.
	RebuildFromAppointments(ctx context.Context) error

	// List devuelve hasta limit registros, año y mes descendentes.
	List(ctx context.Context, limit int) ([]*entity.MonthlyRevenue, error)

	// GetByYearMonth devuelve el registro del período o nil si no existe.
	GetByYearMonth(ctx context.Context, year, month int) (*entity.MonthlyRevenue, error)
}
