package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/concesionario-pro/internal/application/appointments"
	"github.com/tu-usuario/concesionario-pro/internal/application/revenue"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// Ensure TxRunner implements appointments.TxRunner and revenue.TxRunner.
var _ appointments.TxRunner = (*TxRunner)(nil)
var _ revenue.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del ciclo de vida
// de citas atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	apptRepo repository.AppointmentRepository,
	vehicleRepo repository.VehicleRepository,
	ledgerRepo repository.RevenueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	apptRepo := NewAppointmentRepository(tx)
	vehicleRepo := NewVehicleRepository(tx)
	ledgerRepo := NewRevenueRepository(tx)

	if err := fn(apptRepo, vehicleRepo, ledgerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLedger inicia una transacción solo con el repo del ledger (para la
// recalculación: borrar y reconstruir deben confirmarse juntos).
func (r *TxRunner) RunLedger(ctx context.Context, fn func(ledger repository.RevenueRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRevenueRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
