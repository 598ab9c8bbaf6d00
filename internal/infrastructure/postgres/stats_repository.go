package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

func (r *StatsRepo) count(ctx context.Context, name, query string, args ...any) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.%s: %w", name, err)
	}
	return n, nil
}

// CountVehicles total de vehículos en inventario.
func (r *StatsRepo) CountVehicles(ctx context.Context) (int, error) {
	return r.count(ctx, "CountVehicles", `SELECT COUNT(*) FROM vehicles`)
}

// CountVehiclesByStatus vehículos por estado (available|sold).
func (r *StatsRepo) CountVehiclesByStatus(ctx context.Context, status string) (int, error) {
	return r.count(ctx, "CountVehiclesByStatus",
		`SELECT COUNT(*) FROM vehicles WHERE status = $1`, status)
}

// CountCustomers total de clientes.
func (r *StatsRepo) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, "CountCustomers", `SELECT COUNT(*) FROM customers`)
}

// CountAppointments total de citas.
func (r *StatsRepo) CountAppointments(ctx context.Context) (int, error) {
	return r.count(ctx, "CountAppointments", `SELECT COUNT(*) FROM service_appointments`)
}

// CountUpcomingAppointments citas agendadas con fecha futura.
func (r *StatsRepo) CountUpcomingAppointments(ctx context.Context) (int, error) {
	return r.count(ctx, "CountUpcomingAppointments",
		`SELECT COUNT(*) FROM service_appointments
		 WHERE status = 'scheduled' AND appointment_date > NOW()`)
}

// CountSales citas que califican como venta.
func (r *StatsRepo) CountSales(ctx context.Context) (int, error) {
	return r.count(ctx, "CountSales",
		`SELECT COUNT(*) FROM service_appointments a WHERE `+saleWhere)
}

// MonthlyRevenue ingresos acumulados del período, cero si no hay registro.
func (r *StatsRepo) MonthlyRevenue(ctx context.Context, year, month int) (decimal.Decimal, error) {
	var rev decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT revenue FROM monthly_revenue WHERE year = $1 AND month = $2`,
		year, month,
	).Scan(&rev)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("stats.MonthlyRevenue: %w", err)
	}
	return rev, nil
}

// RecentSales hasta limit ventas calificadas, más recientes primero.
func (r *StatsRepo) RecentSales(ctx context.Context, limit int) ([]repository.SaleRecord, error) {
	query := `
		SELECT a.id, a.appointment_date, a.service_type,
		       c.first_name, c.last_name,
		       v.model, v.vin, v.price
		FROM service_appointments a
		JOIN customers c ON c.id = a.customer_id
		LEFT JOIN vehicles v ON v.id = a.vehicle_id
		WHERE ` + saleWhere + `
		ORDER BY a.appointment_date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentSales: %w", err)
	}
	defer rows.Close()
	var sales []repository.SaleRecord
	for rows.Next() {
		var s repository.SaleRecord
		if err := rows.Scan(
			&s.AppointmentID, &s.AppointmentDate, &s.ServiceType,
			&s.FirstName, &s.LastName,
			&s.VehicleModel, &s.VehicleVIN, &s.Price,
		); err != nil {
			return nil, fmt.Errorf("stats.RecentSales scan: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
