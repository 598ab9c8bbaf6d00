package entity

import "time"

// Customer representa un cliente del concesionario.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string // único
	Phone     string // exactamente 8 dígitos
	Address   string
	CreatedAt time.Time
}
