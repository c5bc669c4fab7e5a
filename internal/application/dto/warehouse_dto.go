package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description" validate:"required,max=255"`
	Status      string `json:"status" validate:"max=50"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
