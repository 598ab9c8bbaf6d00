package dto

import "time"

// CreateCustomerRequest cuerpo de POST /api/customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateCustomerRequest cuerpo de PUT /api/customers/:id.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse representación JSON de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
