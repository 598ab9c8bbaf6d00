package repository

import "github.com/tu-usuario/concesionario-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByLogin busca por username o email (el formulario de login
	// acepta cualquiera de los dos). Devuelve nil si no existe.
	FindByLogin(login string) (*entity.User, error)
}
