package entity

import "github.com/shopspring/decimal"

// Product representa una referencia de producto contable.
// ConversionFactor convierte unidades de empaque (caja, arroba) a unidades
// de inventario (und); siempre es un entero mayor que cero.
type Product struct {
	Code             string
	Description      string
	InventoryUnit    string // ej. "UND"
	PackagingUnit    string // ej. "CAJA"
	ConversionFactor int
}

// UnitsFor convierte una cantidad en unidades de empaque a unidades de
// inventario usando el factor de conversión vigente del producto.
func (p *Product) UnitsFor(packaging decimal.Decimal) decimal.Decimal {
	return packaging.Mul(decimal.NewFromInt(int64(p.ConversionFactor)))
}
