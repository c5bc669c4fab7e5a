package repository

import "github.com/jhoicas/Conteo-api/internal/domain/entity"

// InventoryCountRepository define el puerto de persistencia para conteos.
type InventoryCountRepository interface {
	// Create inserta el conteo. Si producto, bodega o usuario referenciados
	// no existen, ErrNotFound; no queda registro parcial. El CreatedAt lo
	// asigna el almacén y se escribe de vuelta en count.
	Create(count *entity.InventoryCount) error
	// ListReport devuelve todos los conteos enriquecidos con los nombres de
	// producto, bodega y usuario, ordenados por fecha de creación descendente.
	// Sin conteos devuelve una lista vacía, no un error.
	ListReport() ([]*entity.ReportRow, error)
}
