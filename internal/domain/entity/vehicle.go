package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del vehículo. La transición available → sold la dispara
// únicamente el cierre de una cita de venta y no es reversible.
const (
	VehicleAvailable = "available"
	VehicleSold      = "sold"
)

// Vehicle representa un vehículo del inventario del concesionario.
type Vehicle struct {
	ID           string
	Model        string
	Year         int
	VIN          string // 17 caracteres, único
	Color        string
	Price        decimal.Decimal
	Status       string // available | sold
	Mileage      int
	FuelType     string // gasoline, diesel, electric, hybrid
	Transmission string // automatic | manual
	CreatedAt    time.Time
}
