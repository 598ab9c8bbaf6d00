package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueResponse un registro del ledger (GET /api/monthly-revenue).
type MonthlyRevenueResponse struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Revenue      decimal.Decimal `json:"revenue"`
	VehicleCount int             `json:"vehicle_count"`
}

// SaleResponse una venta reciente (GET /api/recent-sales).
type SaleResponse struct {
	ID              string           `json:"id"`
	AppointmentDate time.Time        `json:"appointment_date"`
	ServiceType     string           `json:"service_type"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Model           *string          `json:"model"`
	VIN             *string          `json:"vin"`
	Price           *decimal.Decimal `json:"price"`
}
