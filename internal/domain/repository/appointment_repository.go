package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// AppointmentDetail resultado crudo del listado de citas con los campos
// de presentación del cliente y del vehículo (LEFT JOIN: los campos de
// vehículo son nil cuando la cita no tiene vehículo asociado).
type AppointmentDetail struct {
	entity.Appointment
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	VehicleModel *string
	VehicleVIN   *string
}

// AppointmentRepository define el puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(a *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	// List devuelve las citas con datos de cliente/vehículo, ordenadas
	// por fecha de cita descendente.
	List() ([]*AppointmentDetail, error)
	Update(a *entity.Appointment) error
	Delete(id string) error
}

// SaleRecord una venta calificada (cita completada con vehículo, o tipo
// "Venta" completada) con los campos de presentación para el listado.
type SaleRecord struct {
	AppointmentID   string
	AppointmentDate time.Time
	ServiceType     string
	FirstName       string
	LastName        string
	VehicleModel    *string
	VehicleVIN      *string
	Price           *decimal.Decimal // nil si la venta no tiene vehículo asociado
}
