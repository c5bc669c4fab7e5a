package entity

// ReportRow es una fila denormalizada del reporte de conteos: el conteo más
// los nombres legibles de producto, bodega y usuario que lo registró.
type ReportRow struct {
	Count         InventoryCount
	ProductName   string
	WarehouseName string
	UserName      string
}
