package sync

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Longitud del prefijo del UUID usado como identificación de respaldo.
const identificationPrefixLen = 8

// Options parámetros de la sincronización.
type Options struct {
	BatchSize       int    // cuántos candidatos pedir al proveedor
	DefaultPassword string // credencial inicial de los usuarios creados
}

// UseCase sincroniza usuarios desde el proveedor externo: trae un lote de
// candidatos, omite los usernames que ya existen y crea el resto con rol
// "user" y la credencial por defecto.
//
// La sincronización es de mejor esfuerzo, no transaccional: si una creación
// falla a mitad del lote, los usuarios ya creados en esa corrida persisten.
type UseCase struct {
	userRepo repository.UserRepository
	provider Provider
	opts     Options
}

// NewUseCase construye el caso de uso de sincronización.
func NewUseCase(userRepo repository.UserRepository, provider Provider, opts Options) *UseCase {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &UseCase{userRepo: userRepo, provider: provider, opts: opts}
}

// Run ejecuta una corrida de sincronización y devuelve cuántos usuarios
// nuevos se crearon. Fallo del proveedor aborta la corrida con ErrUpstream.
func (uc *UseCase) Run(ctx context.Context) (int, error) {
	candidates, err := uc.provider.Fetch(ctx, uc.opts.BatchSize)
	if err != nil {
		return 0, err
	}

	// Un solo hash bcrypt por corrida: todos los creados comparten la
	// credencial por defecto.
	hash, err := bcrypt.GenerateFromPassword([]byte(uc.opts.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, c := range candidates {
		if c.Username == "" {
			continue
		}
		existing, err := uc.userRepo.GetByUsername(c.Username)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue // ya existe: omitir, ni error ni actualización
		}
		user := &entity.User{
			ID:             uuid.New().String(),
			Username:       c.Username,
			Identification: identificationFor(c),
			Name:           strings.TrimSpace(c.FirstName + " " + c.LastName),
			Role:           entity.RoleUser,
			PasswordHash:   string(hash),
			CreatedAt:      time.Now(),
		}
		if err := uc.userRepo.Create(user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// identificationFor usa el id numérico del proveedor y, si no viene, un
// prefijo del UUID del candidato.
func identificationFor(c CandidateUser) string {
	if c.NumericID != "" {
		return c.NumericID
	}
	if len(c.UUID) > identificationPrefixLen {
		return c.UUID[:identificationPrefixLen]
	}
	return c.UUID
}
