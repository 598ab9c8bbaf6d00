package dto

import "time"

// CreateAppointmentRequest cuerpo de POST /api/appointments.
type CreateAppointmentRequest struct {
	CustomerID      string  `json:"customer_id"`
	VehicleID       *string `json:"vehicle_id"`
	ServiceType     string  `json:"service_type"`
	AppointmentDate string  `json:"appointment_date"` // ISO 8601
	Notes           string  `json:"notes"`
}

// UpdateAppointmentRequest cuerpo de PUT /api/appointments/:id.
// Status vacío conserva el estado actual de la cita.
type UpdateAppointmentRequest struct {
	CustomerID      string  `json:"customer_id"`
	VehicleID       *string `json:"vehicle_id"`
	ServiceType     string  `json:"service_type"`
	AppointmentDate string  `json:"appointment_date"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
}

// UpdateAppointmentResponse respuesta de PUT /api/appointments/:id.
// Los flags permiten al cliente reaccionar al cierre de una venta.
type UpdateAppointmentResponse struct {
	Message       string  `json:"message"`
	StatusChanged bool    `json:"statusChanged"`
	NewStatus     string  `json:"newStatus"`
	VehicleID     *string `json:"vehicleId"`
	ServiceType   string  `json:"serviceType"`
	ID            string  `json:"id"`
}

// AppointmentResponse una cita con los campos de presentación del
// cliente y del vehículo (GET /api/appointments).
type AppointmentResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	VehicleID       *string   `json:"vehicle_id"`
	ServiceType     string    `json:"service_type"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Model           *string   `json:"model"`
	VIN             *string   `json:"vin"`
}
