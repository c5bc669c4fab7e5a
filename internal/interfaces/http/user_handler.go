package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Conteo-api/internal/application/dto"
	appsync "github.com/jhoicas/Conteo-api/internal/application/sync"
	"github.com/jhoicas/Conteo-api/internal/application/usecase"
	"github.com/jhoicas/Conteo-api/internal/domain"
)

// UserHandler maneja listado de usuarios, asignación de bodegas y sincronización.
type UserHandler struct {
	userUC *usecase.UserUseCase
	syncUC *appsync.UseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(userUC *usecase.UserUseCase, syncUC *appsync.UseCase) *UserHandler {
	return &UserHandler{userUC: userUC, syncUC: syncUC}
}

// List godoc
// @Summary      Listar usuarios con sus bodegas asignadas
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.userUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Sincronizar usuarios desde el proveedor externo
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.SyncUsersResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sync-users [post]
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	count, err := h.syncUC.Run(c.UserContext())
	if err != nil {
		// Los creados antes del fallo persisten; el cliente solo ve el error.
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SyncUsersResponse{Message: "Sincronización exitosa", Count: count})
}

// AssignWarehouse godoc
// @Summary      Asignar una bodega a un usuario (idempotente)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignWarehouseRequest  true  "user_id, warehouse_code"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /assign-warehouse [post]
func (h *UserHandler) AssignWarehouse(c *fiber.Ctx) error {
	var in dto.AssignWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.userUC.AssignWarehouse(in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario o bodega no encontrados"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y warehouse_code son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
