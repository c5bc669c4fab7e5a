package usecase

import (
	"github.com/jhoicas/Conteo-api/internal/application/dto"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos (dato de referencia).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El factor de conversión debe ser mayor que
// cero; código duplicado retorna ErrConflict.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Description == "" || in.ConversionFactor <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Code:             in.Code,
		Description:      in.Description,
		InventoryUnit:    in.InventoryUnit,
		PackagingUnit:    in.PackagingUnit,
		ConversionFactor: in.ConversionFactor,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por código; nil si no existe.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto; los conteos dependientes caen en cascada.
func (uc *ProductUseCase) Delete(code string) error {
	return uc.repo.Delete(code)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Code:             p.Code,
		Description:      p.Description,
		InventoryUnit:    p.InventoryUnit,
		PackagingUnit:    p.PackagingUnit,
		ConversionFactor: p.ConversionFactor,
	}
}
