package entity

// Warehouse representa una bodega o sucursal donde se realizan conteos.
// El código es la identidad (llave primaria) y nunca cambia.
type Warehouse struct {
	Code        string
	Description string
	Status      string // texto libre: "Activo", "Inactivo por remodelaciones", etc.
}
