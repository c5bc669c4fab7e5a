package dto

import "time"

// LoginRequest entrada para login (username + password).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password), con sus bodegas asignadas.
type UserResponse struct {
	ID                 string              `json:"id"`
	Username           string              `json:"username"`
	Identification     string              `json:"identification"`
	Name               string              `json:"name"`
	Role               string              `json:"role"`
	AssignedWarehouses []WarehouseResponse `json:"assignedWarehouses"`
	CreatedAt          time.Time           `json:"created_at"`
}

// AssignWarehouseRequest entrada para asignar una bodega a un usuario.
type AssignWarehouseRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid"`
	WarehouseCode string `json:"warehouse_code" validate:"required"`
}

// SyncUsersResponse resultado de la sincronización con el proveedor externo.
type SyncUsersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
