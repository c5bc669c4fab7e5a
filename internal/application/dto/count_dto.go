package dto

import "github.com/shopspring/decimal"

// CreateCountRequest entrada para registrar un conteo físico.
// CutOffDate viene como "YYYY-MM-DD"; la cantidad acepta número o string JSON.
// QuantityPackaging es puntero para distinguir cero explícito de llave ausente.
type CreateCountRequest struct {
	ProductCode       string           `json:"product_code" validate:"required"`
	CountNumber       int              `json:"count_number" validate:"required,oneof=1 2 3"`
	CutOffDate        string           `json:"cut_off_date" validate:"required"`
	WarehouseCode     string           `json:"warehouse_code" validate:"required"`
	QuantityPackaging *decimal.Decimal `json:"quantity_packaging" validate:"required"`
	UserID            string           `json:"user_id" validate:"required,uuid"`
}

// CreateCountResponse salida del registro: id generado y unidades derivadas.
type CreateCountResponse struct {
	ID            string          `json:"id"`
	QuantityUnits decimal.Decimal `json:"quantity_units"`
}
