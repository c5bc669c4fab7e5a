package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Conteo-api/internal/application/dto"
	"github.com/jhoicas/Conteo-api/internal/application/usecase"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
)

// fakeUserRepo emula el comportamiento del adaptador PostgreSQL, incluida la
// semántica de FK de AssignWarehouse y la idempotencia del par.
type fakeUserRepo struct {
	users       map[string]*entity.User // por ID
	warehouses  map[string]entity.Warehouse
	assignments map[string]map[string]bool // userID -> set de códigos
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       map[string]*entity.User{},
		warehouses:  map[string]entity.Warehouse{},
		assignments: map[string]map[string]bool{},
	}
}

func (f *fakeUserRepo) addWarehouse(w entity.Warehouse) { f.warehouses[w.Code] = w }

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Identification == u.Identification {
			return domain.ErrConflict
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return f.withWarehouses(u), nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return f.withWarehouses(u), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	list := []*entity.User{}
	for _, u := range f.users {
		list = append(list, f.withWarehouses(u))
	}
	return list, nil
}

func (f *fakeUserRepo) AssignWarehouse(userID, warehouseCode string) error {
	if _, ok := f.users[userID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := f.warehouses[warehouseCode]; !ok {
		return domain.ErrNotFound
	}
	if f.assignments[userID] == nil {
		f.assignments[userID] = map[string]bool{}
	}
	f.assignments[userID][warehouseCode] = true // set: reasignar es no-op
	return nil
}

func (f *fakeUserRepo) withWarehouses(u *entity.User) *entity.User {
	copied := *u
	copied.Warehouses = []entity.Warehouse{}
	for code := range f.assignments[u.ID] {
		copied.Warehouses = append(copied.Warehouses, f.warehouses[code])
	}
	return &copied
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	m := map[string]*entity.Warehouse{}
	for _, w := range warehouses {
		m[w.Code] = w
	}
	return &fakeWarehouseRepo{warehouses: m}
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	if _, ok := f.warehouses[w.Code]; ok {
		return domain.ErrConflict
	}
	f.warehouses[w.Code] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	return f.warehouses[code], nil
}

func (f *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range f.warehouses {
		list = append(list, w)
	}
	return list, nil
}

func (f *fakeWarehouseRepo) Delete(code string) error {
	if _, ok := f.warehouses[code]; !ok {
		return domain.ErrNotFound
	}
	delete(f.warehouses, code)
	return nil
}

const testUserID = "0b0e7a48-1111-2222-3333-444455556666"

func seedUser(repo *fakeUserRepo) *entity.User {
	u := &entity.User{
		ID:             testUserID,
		Username:       "conteo1",
		Identification: "99887766",
		Name:           "Contador Uno",
		Role:           entity.RoleUser,
		PasswordHash:   "$2a$10$irrelevante",
		CreatedAt:      time.Now(),
	}
	repo.users[u.ID] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de bodegas
// ──────────────────────────────────────────────────────────────────────────────

// Asignar dos veces el mismo par deja exactamente una membresía.
func TestAssignWarehouse_Idempotente(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(userRepo)
	userRepo.addWarehouse(entity.Warehouse{Code: "00014", Description: "Central", Status: "Activo"})
	uc := usecase.NewUserUseCase(userRepo, newFakeWarehouseRepo(
		&entity.Warehouse{Code: "00014", Description: "Central", Status: "Activo"},
	))

	in := dto.AssignWarehouseRequest{UserID: testUserID, WarehouseCode: "00014"}
	require.NoError(t, uc.AssignWarehouse(in))
	require.NoError(t, uc.AssignWarehouse(in), "reasignar no debe ser error")

	user, err := uc.GetByID(testUserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Len(t, user.AssignedWarehouses, 1, "el conjunto debe tener exactamente una membresía")
	assert.Equal(t, "00014", user.AssignedWarehouses[0].Code)
}

func TestAssignWarehouse_UsuarioInexistente(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.addWarehouse(entity.Warehouse{Code: "00014"})
	uc := usecase.NewUserUseCase(userRepo, newFakeWarehouseRepo(&entity.Warehouse{Code: "00014"}))

	err := uc.AssignWarehouse(dto.AssignWarehouseRequest{
		UserID:        "0b0e7a48-aaaa-bbbb-cccc-ddddeeeeffff",
		WarehouseCode: "00014",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignWarehouse_BodegaInexistente(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(userRepo)
	uc := usecase.NewUserUseCase(userRepo, newFakeWarehouseRepo())

	err := uc.AssignWarehouse(dto.AssignWarehouseRequest{
		UserID:        testUserID,
		WarehouseCode: "99999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un ID que ni siquiera es UUID no resuelve: ErrNotFound sin tocar la base.
func TestAssignWarehouse_IDNoUUID(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(userRepo, newFakeWarehouseRepo())

	err := uc.AssignWarehouse(dto.AssignWarehouseRequest{
		UserID:        "no-es-uuid",
		WarehouseCode: "00014",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignWarehouse_CamposVacios(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeWarehouseRepo())

	err := uc.AssignWarehouse(dto.AssignWarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y mapeo
// ──────────────────────────────────────────────────────────────────────────────

// El DTO nunca expone el hash de password y siempre incluye el conjunto de
// bodegas (vacío si no hay asignaciones).
func TestListUsers_MapeoSinPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(userRepo)
	uc := usecase.NewUserUseCase(userRepo, newFakeWarehouseRepo())

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "conteo1", out[0].Username)
	assert.Equal(t, "99887766", out[0].Identification)
	assert.NotNil(t, out[0].AssignedWarehouses)
	assert.Empty(t, out[0].AssignedWarehouses)
}
