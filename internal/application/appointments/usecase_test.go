package appointments_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/appointments"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeApptRepo struct {
	byID map[string]*entity.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{byID: make(map[string]*entity.Appointment)}
}

func (r *fakeApptRepo) Create(a *entity.Appointment) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApptRepo) List() ([]*repository.AppointmentDetail, error) {
	return nil, nil
}

func (r *fakeApptRepo) Update(a *entity.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeApptRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeVehicleRepo struct {
	byID map[string]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{byID: make(map[string]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error {
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVehicleRepo) List() ([]*entity.Vehicle, error) { return nil, nil }

func (r *fakeVehicleRepo) Update(v *entity.Vehicle) error {
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) UpdateStatus(id, status string) error {
	v, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVehicleRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeLedger acumula los upserts igual que el INSERT .. ON CONFLICT real.
type fakeLedger struct {
	revenue map[[2]int]decimal.Decimal
	count   map[[2]int]int
	upserts int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		revenue: make(map[[2]int]decimal.Decimal),
		count:   make(map[[2]int]int),
	}
}

func (l *fakeLedger) Upsert(_ context.Context, year, month int, amount decimal.Decimal) error {
	key := [2]int{year, month}
	l.revenue[key] = l.revenue[key].Add(amount)
	l.count[key]++
	l.upserts++
	return nil
}

func (l *fakeLedger) DeleteAll(context.Context) error               { return nil }
func (l *fakeLedger) RebuildFromAppointments(context.Context) error { return nil }

func (l *fakeLedger) List(context.Context, int) ([]*entity.MonthlyRevenue, error) {
	return nil, nil
}

func (l *fakeLedger) GetByYearMonth(context.Context, int, int) (*entity.MonthlyRevenue, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) List() ([]*entity.Customer, error)           { return nil, nil }
func (r *fakeCustomerRepo) Update(*entity.Customer) error               { return nil }
func (r *fakeCustomerRepo) Delete(string) error                         { return nil }

// fakeTx ejecuta fn con los mismos repos en memoria, sin transacción real.
type fakeTx struct {
	appts    *fakeApptRepo
	vehicles *fakeVehicleRepo
	ledger   *fakeLedger
}

func (t *fakeTx) Run(_ context.Context, fn func(
	appts repository.AppointmentRepository,
	vehicles repository.VehicleRepository,
	ledger repository.RevenueRepository,
) error) error {
	return fn(t.appts, t.vehicles, t.ledger)
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común: un cliente, un vehículo disponible y una cita agendada
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *appointments.UseCase
	appts    *fakeApptRepo
	vehicles *fakeVehicleRepo
	ledger   *fakeLedger
}

const (
	testCustomerID    = "cust-1"
	testVehicleID     = "veh-1"
	testAppointmentID = "appt-1"
)

func newFixture(t *testing.T, serviceType, status string) *fixture {
	t.Helper()

	appts := newFakeApptRepo()
	vehicles := newFakeVehicleRepo()
	ledger := newFakeLedger()
	customers := newFakeCustomerRepo()

	require.NoError(t, customers.Create(&entity.Customer{
		ID:        testCustomerID,
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Phone:     "12345678",
	}))
	require.NoError(t, vehicles.Create(&entity.Vehicle{
		ID:     testVehicleID,
		Model:  "BMW X5",
		Year:   2024,
		VIN:    "WBAXXX0010000000A",
		Color:  "Alpine White",
		Price:  decimal.NewFromInt(75000),
		Status: entity.VehicleAvailable,
	}))
	vid := testVehicleID
	require.NoError(t, appts.Create(&entity.Appointment{
		ID:              testAppointmentID,
		CustomerID:      testCustomerID,
		VehicleID:       &vid,
		ServiceType:     serviceType,
		AppointmentDate: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
		Status:          status,
	}))

	tx := &fakeTx{appts: appts, vehicles: vehicles, ledger: ledger}
	return &fixture{
		uc:       appointments.NewUseCase(tx, appts, customers),
		appts:    appts,
		vehicles: vehicles,
		ledger:   ledger,
	}
}

func updateReq(serviceType, status string) dto.UpdateAppointmentRequest {
	vid := testVehicleID
	return dto.UpdateAppointmentRequest{
		CustomerID:      testCustomerID,
		VehicleID:       &vid,
		ServiceType:     serviceType,
		AppointmentDate: "2025-03-15T10:00",
		Status:          status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	_, err := f.uc.Create(dto.CreateAppointmentRequest{
		CustomerID:      "no-existe",
		ServiceType:     "Mantenimiento",
		AppointmentDate: "2025-04-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SinCamposRequeridos_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	_, err := f.uc.Create(dto.CreateAppointmentRequest{AppointmentDate: "2025-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_FechaInvalida_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	_, err := f.uc.Create(dto.CreateAppointmentRequest{
		CustomerID:      testCustomerID,
		ServiceType:     "Mantenimiento",
		AppointmentDate: "15/03/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CitaValida_QuedaAgendada(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	resp, err := f.uc.Create(dto.CreateAppointmentRequest{
		CustomerID:      testCustomerID,
		ServiceType:     "Mantenimiento",
		AppointmentDate: "2025-04-01",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AppointmentScheduled, resp.Status,
		"toda cita nueva debe nacer en estado scheduled")
	assert.Equal(t, "Ana", resp.FirstName)
	assert.NotEmpty(t, resp.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — cierre de venta
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CitaInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t, "Venta", entity.AppointmentScheduled)

	_, err := f.uc.Update(context.Background(), "no-existe", updateReq("Venta", entity.AppointmentCompleted))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CompletarVenta_AcumulaLedgerYVendeVehiculo(t *testing.T) {
	f := newFixture(t, "Venta", entity.AppointmentScheduled)

	resp, err := f.uc.Update(context.Background(), testAppointmentID, updateReq("Venta", entity.AppointmentCompleted))
	require.NoError(t, err)

	assert.True(t, resp.StatusChanged)
	assert.Equal(t, entity.AppointmentCompleted, resp.NewStatus)

	// El precio del vehículo entra al ledger del (año, mes) de la cita.
	key := [2]int{2025, 3}
	assert.True(t, decimal.NewFromInt(75000).Equal(f.ledger.revenue[key]),
		"el ledger de marzo 2025 debe acumular el precio del vehículo")
	assert.Equal(t, 1, f.ledger.count[key])

	v, err := f.vehicles.GetByID(testVehicleID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleSold, v.Status, "el vehículo vendido debe quedar en sold")
}

func TestUpdate_CompletarSinVehiculo_NoTocaLedger(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	req := updateReq("Mantenimiento", entity.AppointmentCompleted)
	req.VehicleID = nil
	_, err := f.uc.Update(context.Background(), testAppointmentID, req)
	require.NoError(t, err)

	assert.Zero(t, f.ledger.upserts, "una cita sin vehículo no genera ingresos")
}

func TestUpdate_StatusVacio_ConservaElEstadoActual(t *testing.T) {
	f := newFixture(t, "Mantenimiento", entity.AppointmentScheduled)

	resp, err := f.uc.Update(context.Background(), testAppointmentID, updateReq("Mantenimiento", ""))
	require.NoError(t, err)

	assert.False(t, resp.StatusChanged)
	assert.Equal(t, entity.AppointmentScheduled, resp.NewStatus)
	assert.Zero(t, f.ledger.upserts)
}

func TestUpdate_CancelarCita_NoTocaLedger(t *testing.T) {
	f := newFixture(t, "Venta", entity.AppointmentScheduled)

	_, err := f.uc.Update(context.Background(), testAppointmentID, updateReq("Venta", entity.AppointmentCancelled))
	require.NoError(t, err)

	assert.Zero(t, f.ledger.upserts)
	v, _ := f.vehicles.GetByID(testVehicleID)
	assert.Equal(t, entity.VehicleAvailable, v.Status)
}

// Una cita completada que no es de tipo Venta no vuelve a acumular al
// repetir el PUT: la venta ya fue contabilizada.
func TestUpdate_RepetirPutCompletadoNoVenta_NoDuplicaIngresos(t *testing.T) {
	f := newFixture(t, "Entrega", entity.AppointmentScheduled)

	req := updateReq("Entrega", entity.AppointmentCompleted)
	_, err := f.uc.Update(context.Background(), testAppointmentID, req)
	require.NoError(t, err)
	_, err = f.uc.Update(context.Background(), testAppointmentID, req)
	require.NoError(t, err)

	assert.Equal(t, 1, f.ledger.upserts,
		"la segunda actualización de una cita ya completada no debe sumar de nuevo")
	key := [2]int{2025, 3}
	assert.True(t, decimal.NewFromInt(75000).Equal(f.ledger.revenue[key]))
}

// Regresión: una cita de tipo Venta ya completada vuelve a acumular el
// precio en cada PUT repetido. Es el comportamiento histórico del
// sistema; este test lo fija para que cualquier cambio sea deliberado.
func TestUpdate_RepetirPutVentaCompletada_AcumulaOtraVez(t *testing.T) {
	f := newFixture(t, "Venta", entity.AppointmentScheduled)

	req := updateReq("Venta", entity.AppointmentCompleted)
	_, err := f.uc.Update(context.Background(), testAppointmentID, req)
	require.NoError(t, err)
	_, err = f.uc.Update(context.Background(), testAppointmentID, req)
	require.NoError(t, err)

	assert.Equal(t, 2, f.ledger.upserts)
	key := [2]int{2025, 3}
	assert.True(t, decimal.NewFromInt(150000).Equal(f.ledger.revenue[key]),
		"cada PUT repetido de una Venta completada vuelve a sumar el precio")
	assert.Equal(t, 2, f.ledger.count[key])
}

func TestUpdate_VehiculoInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t, "Venta", entity.AppointmentScheduled)

	req := updateReq("Venta", entity.AppointmentCompleted)
	fantasma := "veh-fantasma"
	req.VehicleID = &fantasma
	_, err := f.uc.Update(context.Background(), testAppointmentID, req)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.ledger.upserts, "la venta fallida no debe dejar ingresos registrados")
}
