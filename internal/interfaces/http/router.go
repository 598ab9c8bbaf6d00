package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/analytics"
	"github.com/tu-usuario/concesionario-pro/internal/application/appointments"
	"github.com/tu-usuario/concesionario-pro/internal/application/auth"
	"github.com/tu-usuario/concesionario-pro/internal/application/revenue"
	"github.com/tu-usuario/concesionario-pro/internal/application/usecase"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VehicleUC     *usecase.VehicleUseCase
	CustomerUC    *usecase.CustomerUseCase
	AppointmentUC *appointments.UseCase
	LedgerUC      *revenue.LedgerUseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	ReportGen     reportGenerator
	AppName       string
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Appointments (el PUT puede cerrar una venta)
	appts := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appts.Get("/", appointmentHandler.List)
	appts.Post("/", appointmentHandler.Create)
	appts.Put("/:id", appointmentHandler.Update)
	appts.Delete("/:id", appointmentHandler.Delete)

	// Revenue y dashboard
	revenueHandler := NewRevenueHandler(deps.LedgerUC, deps.ReportGen, deps.AppName)
	protected.Get("/monthly-revenue", revenueHandler.List)
	protected.Get("/recent-sales", revenueHandler.RecentSales)
	protected.Get("/reports/revenue", revenueHandler.Report)
	// La recalculación reescribe el ledger completo: solo admin.
	protected.Post("/recalculate-revenue", RequireRole(entity.RoleAdmin), revenueHandler.Recalculate)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard-stats", dashboardHandler.GetStats)
}
