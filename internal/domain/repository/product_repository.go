package repository

import "github.com/jhoicas/Conteo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetByCode devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Delete elimina el producto y, en cascada, sus conteos dependientes.
	Delete(code string) error
}
