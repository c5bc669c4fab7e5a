package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRowResponse fila del reporte de conteos: el conteo completo más los
// nombres legibles de producto, bodega y usuario.
type ReportRowResponse struct {
	ID                string          `json:"id"`
	CountNumber       int             `json:"count_number"`
	CutOffDate        string          `json:"cut_off_date"` // YYYY-MM-DD
	WarehouseCode     string          `json:"warehouse_code"`
	ProductCode       string          `json:"product_code"`
	QuantityPackaging decimal.Decimal `json:"quantity_packaging"`
	QuantityUnits     decimal.Decimal `json:"quantity_units"`
	UserID            string          `json:"user_id"`
	CreatedAt         time.Time       `json:"created_at"`
	ProductName       string          `json:"product_name"`
	WarehouseName     string          `json:"warehouse_name"`
	UserName          string          `json:"user_name"`
}
