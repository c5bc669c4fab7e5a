package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Conteo-api/internal/application/auth"
	appsync "github.com/jhoicas/Conteo-api/internal/application/sync"
	"github.com/jhoicas/Conteo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	SyncUC      *appsync.UseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	CountUC     *usecase.CountUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	userHandler := NewUserHandler(deps.UserUC, deps.SyncUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	productHandler := NewProductHandler(deps.ProductUC)
	countHandler := NewCountHandler(deps.CountUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Auth
	app.Post("/login", authHandler.Login)
	app.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Users
	app.Get("/users", userHandler.List)
	app.Post("/sync-users", userHandler.Sync)
	app.Post("/assign-warehouse", userHandler.AssignWarehouse)

	// Warehouses (dato de referencia)
	app.Get("/warehouses", warehouseHandler.List)
	app.Post("/warehouses", warehouseHandler.Create)
	app.Get("/warehouses/:code", warehouseHandler.GetByCode)
	app.Delete("/warehouses/:code", warehouseHandler.Delete)

	// Products (dato de referencia)
	app.Get("/products", productHandler.List)
	app.Post("/products", productHandler.Create)
	app.Get("/products/:code", productHandler.GetByCode)
	app.Delete("/products/:code", productHandler.Delete)

	// Inventory counts
	app.Post("/inventory-counts", countHandler.Create)

	// Reports
	app.Get("/reports", reportHandler.List)
	app.Get("/reports/pdf", reportHandler.PDF)
}
