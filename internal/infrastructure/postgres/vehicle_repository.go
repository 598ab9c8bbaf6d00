package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, model, year, vin, color, price, status, mileage, fuel_type, transmission, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Model, v.Year, v.VIN, v.Color, v.Price, v.Status, v.Mileage, v.FuelType, v.Transmission, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID, nil si no existe.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `
		SELECT id, model, year, vin, color, price, status, mileage, fuel_type, transmission, created_at
		FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Model, &v.Year, &v.VIN, &v.Color, &v.Price, &v.Status, &v.Mileage, &v.FuelType, &v.Transmission, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// List devuelve todos los vehículos, más recientes primero.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	query := `
		SELECT id, model, year, vin, color, price, status, mileage, fuel_type, transmission, created_at
		FROM vehicles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Model, &v.Year, &v.VIN, &v.Color, &v.Price, &v.Status, &v.Mileage, &v.FuelType, &v.Transmission, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos del vehículo.
func (r *VehicleRepo) Update(v *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET model = $2, year = $3, vin = $4, color = $5, price = $6,
			status = $7, mileage = $8, fuel_type = $9, transmission = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		v.ID, v.Model, v.Year, v.VIN, v.Color, v.Price, v.Status, v.Mileage, v.FuelType, v.Transmission,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estado del vehículo.
func (r *VehicleRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE vehicles SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo por ID.
func (r *VehicleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
