package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard-stats.
// Cada estadística se calcula de forma independiente: si una consulta
// falla o expira, su valor queda en cero sin bloquear al resto.
type DashboardStatsDTO struct {
	TotalVehicles        int             `json:"totalVehicles"`
	AvailableVehicles    int             `json:"availableVehicles"`
	SoldVehicles         int             `json:"soldVehicles"`
	TotalCustomers       int             `json:"totalCustomers"`
	TotalAppointments    int             `json:"totalAppointments"`
	UpcomingAppointments int             `json:"upcomingAppointments"`
	TotalSales           int             `json:"totalSales"`
	MonthlyRevenue       decimal.Decimal `json:"monthlyRevenue"`
}
