package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// saleWhere filtra las citas que califican como venta. Es el predicado
// compartido entre el conteo del dashboard, el listado de ventas
// recientes y la reconstrucción del ledger; debe modificarse en un solo
// sitio.
const saleWhere = `((a.status = 'completed' AND a.vehicle_id IS NOT NULL)
		OR (a.service_type = 'Venta' AND a.status = 'completed'))`

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
