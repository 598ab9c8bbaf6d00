package repository

import "github.com/tu-usuario/concesionario-pro/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(v *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	List() ([]*entity.Vehicle, error)
	Update(v *entity.Vehicle) error
	// UpdateStatus cambia solo el estado (available|sold). Marcar sold un
	// vehículo ya vendido es inocuo.
	UpdateStatus(id, status string) error
	Delete(id string) error
}
