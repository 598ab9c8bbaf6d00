package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// Rango de años aceptado en el alta de vehículos.
const (
	minVehicleYear = 1990
	maxVehicleYear = 2030
)

const vinLength = 17

// VehicleUseCase casos de uso CRUD de vehículos. El cambio de estado
// available→sold no pasa por aquí: lo dispara el cierre de la cita.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create da de alta un vehículo con estado "available".
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := validateVehicle(in.Model, in.Year, in.VIN, in.Color, in.Price); err != nil {
		return nil, err
	}
	fuelType := in.FuelType
	if fuelType == "" {
		fuelType = "gasoline"
	}
	transmission := in.Transmission
	if transmission == "" {
		transmission = "automatic"
	}
	v := &entity.Vehicle{
		ID:           uuid.New().String(),
		Model:        in.Model,
		Year:         in.Year,
		VIN:          in.VIN,
		Color:        in.Color,
		Price:        in.Price,
		Status:       entity.VehicleAvailable,
		Mileage:      in.Mileage,
		FuelType:     fuelType,
		Transmission: transmission,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// List devuelve todos los vehículos, más recientes primero.
func (uc *VehicleUseCase) List() ([]*dto.VehicleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVehicleResponse(v))
	}
	return out, nil
}

// GetByID devuelve un vehículo o nil si no existe.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return toVehicleResponse(v), nil
}

// Update actualiza todos los campos del vehículo, incluido el estado.
func (uc *VehicleUseCase) Update(id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := validateVehicle(in.Model, in.Year, in.VIN, in.Color, in.Price); err != nil {
		return nil, err
	}
	if in.Status != entity.VehicleAvailable && in.Status != entity.VehicleSold {
		return nil, fmt.Errorf("%w: status debe ser available o sold", domain.ErrInvalidInput)
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	v := &entity.Vehicle{
		ID:           id,
		Model:        in.Model,
		Year:         in.Year,
		VIN:          in.VIN,
		Color:        in.Color,
		Price:        in.Price,
		Status:       in.Status,
		Mileage:      in.Mileage,
		FuelType:     in.FuelType,
		Transmission: in.Transmission,
		CreatedAt:    current.CreatedAt,
	}
	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// Delete elimina un vehículo.
func (uc *VehicleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func validateVehicle(model string, year int, vin, color string, price decimal.Decimal) error {
	if model == "" {
		return fmt.Errorf("%w: model es requerido", domain.ErrInvalidInput)
	}
	if year < minVehicleYear || year > maxVehicleYear {
		return fmt.Errorf("%w: year debe estar entre %d y %d", domain.ErrInvalidInput, minVehicleYear, maxVehicleYear)
	}
	if len(vin) != vinLength {
		return fmt.Errorf("%w: el VIN debe tener %d caracteres", domain.ErrInvalidInput, vinLength)
	}
	if color == "" {
		return fmt.Errorf("%w: color es requerido", domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:           v.ID,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Color:        v.Color,
		Price:        v.Price,
		Status:       v.Status,
		Mileage:      v.Mileage,
		FuelType:     v.FuelType,
		Transmission: v.Transmission,
		CreatedAt:    v.CreatedAt,
	}
}
