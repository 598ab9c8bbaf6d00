package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/usecase"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

type memVehicleRepo struct {
	byID map[string]*entity.Vehicle
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{byID: make(map[string]*entity.Vehicle)}
}

func (r *memVehicleRepo) Create(v *entity.Vehicle) error {
	for _, other := range r.byID {
		if other.VIN == v.VIN {
			return domain.ErrDuplicate
		}
	}
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *memVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memVehicleRepo) List() ([]*entity.Vehicle, error) {
	out := make([]*entity.Vehicle, 0, len(r.byID))
	for _, v := range r.byID {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memVehicleRepo) Update(v *entity.Vehicle) error {
	if _, ok := r.byID[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

func (r *memVehicleRepo) UpdateStatus(id, status string) error {
	v, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *memVehicleRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validVehicleReq() dto.CreateVehicleRequest {
	return dto.CreateVehicleRequest{
		Model: "BMW 330i",
		Year:  2024,
		VIN:   "WBAXXX0020000000B",
		Color: "Jet Black",
		Price: decimal.NewFromInt(45000),
	}
}

func TestVehicleCreate_Valido_NaceDisponibleConDefaults(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newMemVehicleRepo())

	resp, err := uc.Create(validVehicleReq())
	require.NoError(t, err)

	assert.Equal(t, entity.VehicleAvailable, resp.Status)
	assert.Equal(t, "gasoline", resp.FuelType, "fuel_type por defecto")
	assert.Equal(t, "automatic", resp.Transmission, "transmission por defecto")
	assert.NotEmpty(t, resp.ID)
}

func TestVehicleCreate_Invalido_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newMemVehicleRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateVehicleRequest)
	}{
		{"sin modelo", func(r *dto.CreateVehicleRequest) { r.Model = "" }},
		{"año fuera de rango bajo", func(r *dto.CreateVehicleRequest) { r.Year = 1989 }},
		{"año fuera de rango alto", func(r *dto.CreateVehicleRequest) { r.Year = 2031 }},
		{"VIN corto", func(r *dto.CreateVehicleRequest) { r.VIN = "ABC123" }},
		{"sin color", func(r *dto.CreateVehicleRequest) { r.Color = "" }},
		{"precio negativo", func(r *dto.CreateVehicleRequest) { r.Price = decimal.NewFromInt(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validVehicleReq()
			tc.mutate(&req)
			_, err := uc.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestVehicleCreate_VINDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newMemVehicleRepo())

	_, err := uc.Create(validVehicleReq())
	require.NoError(t, err)

	_, err = uc.Create(validVehicleReq())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVehicleUpdate_StatusDesconocido_RetornaInvalidInput(t *testing.T) {
	repo := newMemVehicleRepo()
	uc := usecase.NewVehicleUseCase(repo)
	created, err := uc.Create(validVehicleReq())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateVehicleRequest{
		Model:  created.Model,
		Year:   created.Year,
		VIN:    created.VIN,
		Color:  created.Color,
		Price:  created.Price,
		Status: "reservado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newMemVehicleRepo())

	req := validVehicleReq()
	_, err := uc.Update("no-existe", dto.UpdateVehicleRequest{
		Model:  req.Model,
		Year:   req.Year,
		VIN:    req.VIN,
		Color:  req.Color,
		Price:  req.Price,
		Status: entity.VehicleAvailable,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newMemVehicleRepo())

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
