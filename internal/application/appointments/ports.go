package appointments

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos atados a
// ella. El cierre de una cita de venta muta tres tablas (cita, vehículo,
// ledger) y debe ser atómico: o se aplican las tres escrituras o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		apptRepo repository.AppointmentRepository,
		vehicleRepo repository.VehicleRepository,
		ledgerRepo repository.RevenueRepository,
	) error) error
}
