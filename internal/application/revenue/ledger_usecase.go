// Package revenue contiene los casos de uso del ledger de ingresos
// mensuales: consulta, ventas recientes y la recalculación total.
package revenue

import (
	"context"
	"fmt"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

const (
	ledgerListLimit  = 12 // meses devueltos por GET /api/monthly-revenue
	recentSalesLimit = 10 // ventas devueltas por GET /api/recent-sales
)

// LedgerUseCase casos de uso del ledger mensual.
type LedgerUseCase struct {
	tx    TxRunner
	repo  repository.RevenueRepository
	stats repository.StatsRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(tx TxRunner, repo repository.RevenueRepository, stats repository.StatsRepository) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, repo: repo, stats: stats}
}

// Recalculate borra el ledger y lo reconstruye desde las citas que
// califican como venta. Es el camino autoritativo de reconciliación:
// ejecutarlo dos veces seguidas produce exactamente los mismos registros.
func (uc *LedgerUseCase) Recalculate(ctx context.Context) error {
	return uc.tx.RunLedger(ctx, func(ledger repository.RevenueRepository) error {
		if err := ledger.DeleteAll(ctx); err != nil {
			return fmt.Errorf("vaciar ledger: %w", err)
		}
		if err := ledger.RebuildFromAppointments(ctx); err != nil {
			return fmt.Errorf("reconstruir ledger: %w", err)
		}
		return nil
	})
}

// List devuelve hasta 12 registros mensuales, más recientes primero.
func (uc *LedgerUseCase) List(ctx context.Context) ([]*dto.MonthlyRevenueResponse, error) {
	records, err := uc.repo.List(ctx, ledgerListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MonthlyRevenueResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.MonthlyRevenueResponse{
			Year:         r.Year,
			Month:        r.Month,
			Revenue:      r.Revenue,
			VehicleCount: r.VehicleCount,
		})
	}
	return out, nil
}

// RecentSales devuelve hasta 10 ventas calificadas, más recientes primero.
func (uc *LedgerUseCase) RecentSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	sales, err := uc.stats.RecentSales(ctx, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, &dto.SaleResponse{
			ID:              s.AppointmentID,
			AppointmentDate: s.AppointmentDate,
			ServiceType:     s.ServiceType,
			FirstName:       s.FirstName,
			LastName:        s.LastName,
			Model:           s.VehicleModel,
			VIN:             s.VehicleVIN,
			Price:           s.Price,
		})
	}
	return out, nil
}
