package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Números de conteo permitidos: tres pasadas por período de corte.
const (
	CountNumberMin = 1
	CountNumberMax = 3
)

// InventoryCount es el registro de un conteo físico: cuánto de un producto
// había en una bodega a una fecha de corte, según un usuario.
// QuantityUnits se deriva una sola vez al crear el registro
// (QuantityPackaging × factor de conversión vigente) y se persiste tal cual;
// cambios posteriores al producto no lo recalculan.
type InventoryCount struct {
	ID                string
	CountNumber       int // 1, 2 o 3
	CutOffDate        time.Time
	WarehouseCode     string
	ProductCode       string
	QuantityPackaging decimal.Decimal
	QuantityUnits     decimal.Decimal
	UserID            string
	CreatedAt         time.Time // asignado por el servidor, inmutable
}

// ValidCountNumber indica si n es un número de conteo permitido.
func ValidCountNumber(n int) bool {
	return n >= CountNumberMin && n <= CountNumberMax
}
