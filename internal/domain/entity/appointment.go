package entity

import "time"

// Estados de la cita.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// ServiceTypeSale es el tipo de servicio centinela que marca una cita
// como evento de venta.
const ServiceTypeSale = "Venta"

// Appointment representa una cita de servicio o un evento de venta.
// VehicleID es opcional: una cita de taller puede no tener vehículo del
// inventario asociado.
type Appointment struct {
	ID              string
	CustomerID      string
	VehicleID       *string
	ServiceType     string
	AppointmentDate time.Time
	Status          string
	Notes           string
	CreatedAt       time.Time
}

// IsSale indica si la cita califica como venta: completada con vehículo
// asociado, o completada con tipo de servicio "Venta".
func (a *Appointment) IsSale() bool {
	if a.Status != AppointmentCompleted {
		return false
	}
	return a.VehicleID != nil || a.ServiceType == ServiceTypeSale
}
