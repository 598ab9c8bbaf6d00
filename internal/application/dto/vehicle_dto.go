package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVehicleRequest cuerpo de POST /api/vehicles.
type CreateVehicleRequest struct {
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	VIN          string          `json:"vin"`
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price"`
	Mileage      int             `json:"mileage"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
}

// UpdateVehicleRequest cuerpo de PUT /api/vehicles/:id.
type UpdateVehicleRequest struct {
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	VIN          string          `json:"vin"`
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	Mileage      int             `json:"mileage"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
}

// VehicleResponse representación JSON de un vehículo.
type VehicleResponse struct {
	ID           string          `json:"id"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	VIN          string          `json:"vin"`
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	Mileage      int             `json:"mileage"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	CreatedAt    time.Time       `json:"created_at"`
}
