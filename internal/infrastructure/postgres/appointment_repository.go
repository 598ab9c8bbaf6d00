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

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(a *entity.Appointment) error {
	query := `
		INSERT INTO service_appointments (id, customer_id, vehicle_id, service_type, appointment_date, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CustomerID, a.VehicleID, a.ServiceType, a.AppointmentDate, a.Status, a.Notes, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID, nil si no existe.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `
		SELECT id, customer_id, vehicle_id, service_type, appointment_date, status, notes, created_at
		FROM service_appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CustomerID, &a.VehicleID, &a.ServiceType, &a.AppointmentDate, &a.Status, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// List devuelve las citas con datos de cliente y vehículo, fecha descendente.
func (r *AppointmentRepo) List() ([]*repository.AppointmentDetail, error) {
	query := `
		SELECT a.id, a.customer_id, a.vehicle_id, a.service_type, a.appointment_date, a.status, a.notes, a.created_at,
		       c.first_name, c.last_name, c.email, c.phone,
		       v.model, v.vin
		FROM service_appointments a
		JOIN customers c ON c.id = a.customer_id
		LEFT JOIN vehicles v ON v.id = a.vehicle_id
		ORDER BY a.appointment_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*repository.AppointmentDetail
	for rows.Next() {
		var d repository.AppointmentDetail
		if err := rows.Scan(
			&d.ID, &d.CustomerID, &d.VehicleID, &d.ServiceType, &d.AppointmentDate, &d.Status, &d.Notes, &d.CreatedAt,
			&d.FirstName, &d.LastName, &d.Email, &d.Phone,
			&d.VehicleModel, &d.VehicleVIN,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza los campos de la cita.
func (r *AppointmentRepo) Update(a *entity.Appointment) error {
	query := `
		UPDATE service_appointments
		SET customer_id = $2, vehicle_id = $3, service_type = $4, appointment_date = $5, status = $6, notes = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		a.ID, a.CustomerID, a.VehicleID, a.ServiceType, a.AppointmentDate, a.Status, a.Notes,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM service_appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
