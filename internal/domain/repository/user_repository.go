package repository

import "github.com/jhoicas/Conteo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByUsername devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// List devuelve todos los usuarios con sus bodegas asignadas cargadas.
	List() ([]*entity.User, error)
	// AssignWarehouse agrega la bodega al conjunto del usuario. Reasignar el
	// mismo par es un no-op; si usuario o bodega no existen, ErrNotFound.
	AssignWarehouse(userID, warehouseCode string) error
}
