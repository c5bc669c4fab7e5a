package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Conteo-api/internal/application/dto"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

// UserUseCase casos de uso sobre usuarios: listado, perfil y asignación de bodegas.
type UserUseCase struct {
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, warehouseRepo repository.WarehouseRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, warehouseRepo: warehouseRepo}
}

// List lista todos los usuarios con sus bodegas asignadas.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return ToUserResponse(user), nil
}

// AssignWarehouse agrega una bodega al conjunto del usuario. Reasignar el
// mismo par es un no-op; si usuario o bodega no resuelven, ErrNotFound.
func (uc *UserUseCase) AssignWarehouse(in dto.AssignWarehouseRequest) error {
	if in.UserID == "" || in.WarehouseCode == "" {
		return domain.ErrInvalidInput
	}
	// Un ID que no es UUID nunca resuelve a un usuario.
	if _, err := uuid.Parse(in.UserID); err != nil {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByCode(in.WarehouseCode)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	// La bodega pudo borrarse entre la lectura y el insert; el FK del
	// adaptador lo reporta igualmente como ErrNotFound.
	return uc.userRepo.AssignWarehouse(in.UserID, in.WarehouseCode)
}

// ToUserResponse mapea la entidad User a su DTO (sin hash de password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	warehouses := make([]dto.WarehouseResponse, 0, len(u.Warehouses))
	for _, w := range u.Warehouses {
		warehouses = append(warehouses, dto.WarehouseResponse{
			Code:        w.Code,
			Description: w.Description,
			Status:      w.Status,
		})
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Identification:     u.Identification,
		Name:               u.Name,
		Role:               u.Role,
		AssignedWarehouses: warehouses,
		CreatedAt:          u.CreatedAt,
	}
}
