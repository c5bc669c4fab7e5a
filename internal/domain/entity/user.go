package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una persona que registra conteos físicos de inventario.
// Las bodegas asignadas definen dónde puede contar (relación N:M, sin orden).
type User struct {
	ID             string
	Username       string
	Identification string // cédula u otro documento, único
	Name           string
	Role           string // admin | user
	PasswordHash   string // bcrypt, nunca plano en dominio después de persistir
	Warehouses     []Warehouse
	CreatedAt      time.Time
}
