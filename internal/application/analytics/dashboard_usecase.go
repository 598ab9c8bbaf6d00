// Package analytics contiene el caso de uso del dashboard: la foto de
// conteos e ingresos del mes en curso.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
	"github.com/tu-usuario/concesionario-pro/pkg/logger"
)

// statsTimeout acota el agregado completo. Una estadística que no llega
// a tiempo queda en cero; el dashboard nunca responde 500 por una
// consulta lenta.
const statsTimeout = 3 * time.Second

// DashboardUseCase genera el resumen del dashboard.
//
// Cada estadística se consulta en su propia goroutine contra el
// StatsRepository (consultas read-only independientes) y se junta con un
// WaitGroup. El fallo de una consulta deja su valor por defecto en cero
// y se registra, sin propagar el error al resto.
type DashboardUseCase struct {
	stats repository.StatsRepository
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, log: log}
}

// GetStats construye el DashboardStatsDTO. Nunca devuelve error: las
// estadísticas que fallen quedan en cero.
func (uc *DashboardUseCase) GetStats(ctx context.Context) *dto.DashboardStatsDTO {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	now := time.Now()
	out := &dto.DashboardStatsDTO{MonthlyRevenue: decimal.Zero}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	count := func(name string, query func(context.Context) (int, error), assign func(*dto.DashboardStatsDTO, int)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := query(ctx)
			if err != nil {
				uc.log.Warn().Err(err).Str("stat", name).Msg("estadística no disponible, queda en cero")
				return
			}
			mu.Lock()
			assign(out, n)
			mu.Unlock()
		}()
	}

	count("totalVehicles", uc.stats.CountVehicles,
		func(d *dto.DashboardStatsDTO, n int) { d.TotalVehicles = n })
	count("availableVehicles", func(ctx context.Context) (int, error) {
		return uc.stats.CountVehiclesByStatus(ctx, entity.VehicleAvailable)
	}, func(d *dto.DashboardStatsDTO, n int) { d.AvailableVehicles = n })
	count("soldVehicles", func(ctx context.Context) (int, error) {
		return uc.stats.CountVehiclesByStatus(ctx, entity.VehicleSold)
	}, func(d *dto.DashboardStatsDTO, n int) { d.SoldVehicles = n })
	count("totalCustomers", uc.stats.CountCustomers,
		func(d *dto.DashboardStatsDTO, n int) { d.TotalCustomers = n })
	count("totalAppointments", uc.stats.CountAppointments,
		func(d *dto.DashboardStatsDTO, n int) { d.TotalAppointments = n })
	count("upcomingAppointments", uc.stats.CountUpcomingAppointments,
		func(d *dto.DashboardStatsDTO, n int) { d.UpcomingAppointments = n })
	count("totalSales", uc.stats.CountSales,
		func(d *dto.DashboardStatsDTO, n int) { d.TotalSales = n })

	wg.Add(1)
	go func() {
		defer wg.Done()
		rev, err := uc.stats.MonthlyRevenue(ctx, now.Year(), int(now.Month()))
		if err != nil {
			uc.log.Warn().Err(err).Str("stat", "monthlyRevenue").Msg("estadística no disponible, queda en cero")
			return
		}
		mu.Lock()
		out.MonthlyRevenue = rev
		mu.Unlock()
	}()

	wg.Wait()
	return out
}
