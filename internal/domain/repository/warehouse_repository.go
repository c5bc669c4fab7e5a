package repository

import "github.com/jhoicas/Conteo-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
// GetByCode devuelve (nil, nil) si la bodega no existe.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByCode(code string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
	// Delete elimina la bodega y, en cascada, sus conteos dependientes.
	Delete(code string) error
}
