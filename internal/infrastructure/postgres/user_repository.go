package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Username o identificación duplicados
// retornan ErrConflict.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, identification, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.Identification, user.Name, user.Role,
		user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, con sus bodegas asignadas.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username, con sus bodegas asignadas.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`WHERE username = $1`, username)
}

func (r *UserRepo) getOne(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, username, identification, name, role, password_hash, created_at
		FROM users ` + where
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Identification, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	warehouses, err := r.warehousesOf(u.ID)
	if err != nil {
		return nil, err
	}
	u.Warehouses = warehouses
	return &u, nil
}

// List lista todos los usuarios con sus bodegas asignadas.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id, username, identification, name, role, password_hash, created_at
		FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	byID := map[string]*entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Identification, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Warehouses = []entity.Warehouse{}
		list = append(list, &u)
		byID[u.ID] = &u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Segunda pasada: una sola consulta para las asignaciones de todos.
	assignQuery := `
		SELECT uw.user_id, w.code, w.description, w.status
		FROM user_warehouses uw
		JOIN warehouses w ON w.code = uw.warehouse_code`
	assignRows, err := r.pool.Query(context.Background(), assignQuery)
	if err != nil {
		return nil, fmt.Errorf("list user warehouses: %w", err)
	}
	defer assignRows.Close()
	for assignRows.Next() {
		var userID string
		var w entity.Warehouse
		if err := assignRows.Scan(&userID, &w.Code, &w.Description, &w.Status); err != nil {
			return nil, fmt.Errorf("scan user warehouse: %w", err)
		}
		if u, ok := byID[userID]; ok {
			u.Warehouses = append(u.Warehouses, w)
		}
	}
	return list, assignRows.Err()
}

// AssignWarehouse inserta el par (usuario, bodega). ON CONFLICT DO NOTHING
// hace la operación idempotente; un FK roto significa que usuario o bodega
// no existen.
func (r *UserRepo) AssignWarehouse(userID, warehouseCode string) error {
	query := `
		INSERT INTO user_warehouses (user_id, warehouse_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id, warehouse_code) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, userID, warehouseCode)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("assign warehouse: %w", err)
	}
	return nil
}

func (r *UserRepo) warehousesOf(userID string) ([]entity.Warehouse, error) {
	query := `
		SELECT w.code, w.description, w.status
		FROM user_warehouses uw
		JOIN warehouses w ON w.code = uw.warehouse_code
		WHERE uw.user_id = $1`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user warehouses: %w", err)
	}
	defer rows.Close()
	warehouses := []entity.Warehouse{}
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.Code, &w.Description, &w.Status); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
