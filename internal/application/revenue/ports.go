package revenue

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// TxRunner ejecuta fn con un RevenueRepository atado a una transacción.
// La recalculación borra y reconstruye el ledger completo; ambas fases
// deben confirmarse juntas para que una lectura concurrente nunca vea el
// ledger vacío.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(ledger repository.RevenueRepository) error) error
}
