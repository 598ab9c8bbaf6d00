package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

func TestIsSale(t *testing.T) {
	vid := "veh-1"
	cases := []struct {
		name string
		appt entity.Appointment
		want bool
	}{
		{"completada con vehículo", entity.Appointment{Status: entity.AppointmentCompleted, VehicleID: &vid}, true},
		{"Venta completada sin vehículo", entity.Appointment{Status: entity.AppointmentCompleted, ServiceType: entity.ServiceTypeSale}, true},
		{"Venta agendada", entity.Appointment{Status: entity.AppointmentScheduled, ServiceType: entity.ServiceTypeSale, VehicleID: &vid}, false},
		{"mantenimiento completado sin vehículo", entity.Appointment{Status: entity.AppointmentCompleted, ServiceType: "Mantenimiento"}, false},
		{"cancelada con vehículo", entity.Appointment{Status: entity.AppointmentCancelled, VehicleID: &vid}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.appt.IsSale())
		})
	}
}
