package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Conteo-api/internal/application/dto"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

// Formato de la fecha de corte en requests.
const cutOffDateLayout = "2006-01-02"

// CountUseCase registra conteos físicos de inventario. La derivación
// empaque→unidades ocurre aquí, una sola vez, con el factor de conversión
// vigente del producto al momento del registro.
type CountUseCase struct {
	countRepo   repository.InventoryCountRepository
	productRepo repository.ProductRepository
}

// NewCountUseCase construye el caso de uso.
func NewCountUseCase(countRepo repository.InventoryCountRepository, productRepo repository.ProductRepository) *CountUseCase {
	return &CountUseCase{countRepo: countRepo, productRepo: productRepo}
}

// Create valida la entrada, deriva las unidades de inventario y persiste el
// conteo. Cualquier violación de validación retorna ErrInvalidInput sin
// escribir nada; producto inexistente retorna ErrNotFound.
func (uc *CountUseCase) Create(in dto.CreateCountRequest) (*dto.CreateCountResponse, error) {
	if !entity.ValidCountNumber(in.CountNumber) {
		return nil, domain.ErrInvalidInput
	}
	cutOff, err := time.Parse(cutOffDateLayout, in.CutOffDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// Llave ausente y cero explícito no son lo mismo: solo el segundo es válido.
	if in.QuantityPackaging == nil || in.QuantityPackaging.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductCode == "" || in.WarehouseCode == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByCode(in.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	count := &entity.InventoryCount{
		ID:                uuid.New().String(),
		CountNumber:       in.CountNumber,
		CutOffDate:        cutOff,
		WarehouseCode:     in.WarehouseCode,
		ProductCode:       in.ProductCode,
		QuantityPackaging: *in.QuantityPackaging,
		QuantityUnits:     product.UnitsFor(*in.QuantityPackaging),
		UserID:            in.UserID,
	}
	// El producto pudo borrarse entre la lectura y el insert; el FK lo
	// reporta como ErrNotFound y no queda registro parcial.
	if err := uc.countRepo.Create(count); err != nil {
		return nil, err
	}
	return &dto.CreateCountResponse{
		ID:            count.ID,
		QuantityUnits: count.QuantityUnits,
	}, nil
}
