// seed aplica el esquema SQL y carga datos iniciales: un usuario administrador
// y un lote de vehículos de muestra si las tablas están vacías.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca internal/infrastructure/postgres/migrations/001_schema.sql.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/concesionario-pro/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const defaultSchemaPath = "internal/infrastructure/postgres/migrations/001_schema.sql"

func main() {
	schemaPath := defaultSchemaPath
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema %s: %v\n", schemaPath, err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	if err := seedAdmin(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario admin: %v\n", err)
		os.Exit(1)
	}
	if err := seedVehicles(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar vehículos de muestra: %v\n", err)
		os.Exit(1)
	}
}

func seedAdmin(ctx context.Context, pool postgres.Querier) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Usuarios ya existentes, se omite admin")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	repo := postgres.NewUserRepository(pool)
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@concesionario.local",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(user); err != nil {
		return err
	}
	fmt.Println("Usuario admin creado (password: admin123, cámbiela en producción)")
	return nil
}

func seedVehicles(ctx context.Context, pool postgres.Querier) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM vehicles").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Vehículos ya existentes, se omite la muestra")
		return nil
	}

	samples := []struct {
		model        string
		vin          string
		color        string
		price        int64
		fuelType     string
		transmission string
	}{
		{"BMW X5", "WBAXXX0010000000A", "Alpine White", 75000, "gasoline", "automatic"},
		{"BMW 330i", "WBAXXX0020000000B", "Jet Black", 45000, "gasoline", "automatic"},
		{"BMW iX3", "WBAXXX0030000000C", "Mineral Grey", 60000, "electric", "automatic"},
		{"BMW M3", "WBAXXX0040000000D", "Melbourne Red", 80000, "gasoline", "manual"},
		{"BMW X7", "WBAXXX0050000000E", "Carbon Black", 95000, "gasoline", "automatic"},
	}

	repo := postgres.NewVehicleRepository(pool)
	for _, s := range samples {
		v := &entity.Vehicle{
			ID:           uuid.NewString(),
			Model:        s.model,
			Year:         2024,
			VIN:          s.vin,
			Color:        s.color,
			Price:        decimal.NewFromInt(s.price),
			Status:       entity.VehicleAvailable,
			Mileage:      0,
			FuelType:     s.fuelType,
			Transmission: s.transmission,
			CreatedAt:    time.Now(),
		}
		if err := repo.Create(v); err != nil {
			return err
		}
		fmt.Printf("Vehículo creado: %s (%s)\n", v.Model, v.VIN)
	}
	return nil
}
