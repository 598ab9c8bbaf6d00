package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/usecase"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

type memCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func validCustomerReq() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Phone:     "12345678",
		Address:   "Calle 1 #2-34",
	}
}

func TestCustomerCreate_Valido(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	resp, err := uc.Create(validCustomerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ana@example.com", resp.Email)
}

func TestCustomerCreate_EmailDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	_, err := uc.Create(validCustomerReq())
	require.NoError(t, err)

	again := validCustomerReq()
	again.Phone = "87654321"
	_, err = uc.Create(again)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerCreate_Invalido_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateCustomerRequest)
	}{
		{"sin nombre", func(r *dto.CreateCustomerRequest) { r.FirstName = "" }},
		{"sin apellido", func(r *dto.CreateCustomerRequest) { r.LastName = "" }},
		{"email inválido", func(r *dto.CreateCustomerRequest) { r.Email = "no-es-un-email" }},
		{"teléfono corto", func(r *dto.CreateCustomerRequest) { r.Phone = "1234567" }},
		{"teléfono con letras", func(r *dto.CreateCustomerRequest) { r.Phone = "1234567a" }},
		{"teléfono largo", func(r *dto.CreateCustomerRequest) { r.Phone = "123456789" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCustomerReq()
			tc.mutate(&req)
			_, err := uc.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCustomerUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	_, err := uc.Update("no-existe", validCustomerReq())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
