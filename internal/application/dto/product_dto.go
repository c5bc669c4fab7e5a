package dto

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code             string `json:"code" validate:"required,max=50"`
	Description      string `json:"description" validate:"required,max=255"`
	InventoryUnit    string `json:"inventory_unit" validate:"required,max=20"`
	PackagingUnit    string `json:"packaging_unit" validate:"required,max=20"`
	ConversionFactor int    `json:"conversion_factor" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code             string `json:"code"`
	Description      string `json:"description"`
	InventoryUnit    string `json:"inventory_unit"`
	PackagingUnit    string `json:"packaging_unit"`
	ConversionFactor int    `json:"conversion_factor"`
}
