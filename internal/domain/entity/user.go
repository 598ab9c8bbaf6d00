package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema (acceso a la API).
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string
	Role         string // admin | user
	CreatedAt    time.Time
}
