package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/concesionario-pro/internal/application/analytics"
	"github.com/tu-usuario/concesionario-pro/internal/application/appointments"
	"github.com/tu-usuario/concesionario-pro/internal/application/auth"
	"github.com/tu-usuario/concesionario-pro/internal/application/revenue"
	"github.com/tu-usuario/concesionario-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/concesionario-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/concesionario-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/concesionario-pro/internal/interfaces/http"
	"github.com/tu-usuario/concesionario-pro/pkg/config"
	"github.com/tu-usuario/concesionario-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	apptRepo := postgres.NewAppointmentRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	appointmentUC := appointments.NewUseCase(txRunner, apptRepo, customerRepo)
	ledgerUC := revenue.NewLedgerUseCase(txRunner, revenueRepo, statsRepo)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Concesionario Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		VehicleUC:     vehicleUC,
		CustomerUC:    customerUC,
		AppointmentUC: appointmentUC,
		LedgerUC:      ledgerUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		ReportGen:     infrapdf.NewRevenueReportGenerator(),
		AppName:       cfg.App.Name,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
