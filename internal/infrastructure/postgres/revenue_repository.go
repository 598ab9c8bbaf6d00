package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementación de RevenueRepository (usable con pool o tx).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// Upsert acumula amount sobre (year, month) en una sola sentencia
// atómica: el ON CONFLICT incrementa sobre el valor ya confirmado, por
// lo que dos ventas concurrentes del mismo mes nunca pierden un
// incremento.
func (r *RevenueRepo) Upsert(ctx context.Context, year, month int, amount decimal.Decimal) error {
	query := `
		INSERT INTO monthly_revenue (id, year, month, revenue, vehicle_count)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (year, month) DO UPDATE
		SET revenue = monthly_revenue.revenue + EXCLUDED.revenue,
		    vehicle_count = monthly_revenue.vehicle_count + 1`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), year, month, amount)
	if err != nil {
		return fmt.Errorf("upsert monthly revenue: %w", err)
	}
	return nil
}

// DeleteAll vacía el ledger.
func (r *RevenueRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM monthly_revenue`); err != nil {
		return fmt.Errorf("delete monthly revenue: %w", err)
	}
	return nil
}

// RebuildFromAppointments reconstruye el ledger agrupando las citas que
// califican como venta por (año, mes) de la fecha de cita. Las ventas de
// tipo "Venta" sin vehículo cuentan como unidad con ingreso cero.
func (r *RevenueRepo) RebuildFromAppointments(ctx context.Context) error {
	query := `
		INSERT INTO monthly_revenue (id, year, month, revenue, vehicle_count)
		SELECT gen_random_uuid()::text,
		       EXTRACT(YEAR FROM a.appointment_date)::int,
		       EXTRACT(MONTH FROM a.appointment_date)::int,
		       COALESCE(SUM(v.price), 0),
		       COUNT(*)
		FROM service_appointments a
		LEFT JOIN vehicles v ON v.id = a.vehicle_id
		WHERE ` + saleWhere + `
		GROUP BY 2, 3`
	if _, err := r.q.Exec(ctx, query); err != nil {
		return fmt.Errorf("rebuild monthly revenue: %w", err)
	}
	return nil
}

// List devuelve hasta limit registros, año y mes descendentes.
func (r *RevenueRepo) List(ctx context.Context, limit int) ([]*entity.MonthlyRevenue, error) {
	query := `
		SELECT id, year, month, revenue, vehicle_count
		FROM monthly_revenue ORDER BY year DESC, month DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list monthly revenue: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyRevenue
	for rows.Next() {
		var m entity.MonthlyRevenue
		if err := rows.Scan(&m.ID, &m.Year, &m.Month, &m.Revenue, &m.VehicleCount); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByYearMonth devuelve el registro del período o nil si no existe.
func (r *RevenueRepo) GetByYearMonth(ctx context.Context, year, month int) (*entity.MonthlyRevenue, error) {
	query := `
		SELECT id, year, month, revenue, vehicle_count
		FROM monthly_revenue WHERE year = $1 AND month = $2`
	var m entity.MonthlyRevenue
	err := r.q.QueryRow(ctx, query, year, month).Scan(&m.ID, &m.Year, &m.Month, &m.Revenue, &m.VehicleCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get monthly revenue: %w", err)
	}
	return &m, nil
}
