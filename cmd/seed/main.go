// seed puebla la base con los datos de referencia iniciales: bodegas,
// productos y el usuario administrador. Es idempotente: solo inserta lo que
// no exista todavía.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Conteo-api/pkg/config"
	"github.com/jhoicas/Conteo-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var seedWarehouses = []entity.Warehouse{
	{Code: "00009", Description: "Cereté", Status: "Activo"},
	{Code: "00014", Description: "Central", Status: "Activo"},
	{Code: "00006", Description: "Valledupar", Status: "Activo"},
	{Code: "00090", Description: "Maicao", Status: "Inactivo por remodelaciones"},
}

var seedProducts = []entity.Product{
	{Code: "4779", Description: "ATUN TRIPACK LA SOBERANA ACTE 80 GRM", InventoryUnit: "UND", PackagingUnit: "CAJA", ConversionFactor: 12},
	{Code: "4266", Description: "HARINA AREPA REPA BLANCA 500G X24", InventoryUnit: "UND", PackagingUnit: "ARROBA", ConversionFactor: 24},
	{Code: "4442", Description: "HARINA LA SOBERANA BLANCA 500G X24", InventoryUnit: "UND", PackagingUnit: "ARROBA", ConversionFactor: 24},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	for _, w := range seedWarehouses {
		existing, err := warehouseRepo.GetByCode(w.Code)
		if err != nil {
			log.Fatal().Err(err).Str("code", w.Code).Msg("consultar bodega")
		}
		if existing != nil {
			continue
		}
		warehouse := w
		if err := warehouseRepo.Create(&warehouse); err != nil {
			log.Fatal().Err(err).Str("code", w.Code).Msg("crear bodega")
		}
		log.Info().Str("code", w.Code).Str("description", w.Description).Msg("bodega creada")
	}

	for _, p := range seedProducts {
		existing, err := productRepo.GetByCode(p.Code)
		if err != nil {
			log.Fatal().Err(err).Str("code", p.Code).Msg("consultar producto")
		}
		if existing != nil {
			continue
		}
		product := p
		if err := productRepo.Create(&product); err != nil {
			log.Fatal().Err(err).Str("code", p.Code).Msg("crear producto")
		}
		log.Info().Str("code", p.Code).Msg("producto creado")
	}

	admin, err := userRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		user := &entity.User{
			ID:             uuid.New().String(),
			Username:       "admin",
			Identification: "12345678",
			Name:           "Admin Principal",
			Role:           entity.RoleAdmin,
			PasswordHash:   string(hash),
			CreatedAt:      time.Now(),
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("username", user.Username).Msg("admin creado")
	}

	log.Info().Msg("seed completado")
}
