package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación del puerto InventoryCountRepository sobre PostgreSQL.
type InventoryCountRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryCountRepository construye el adaptador de persistencia para conteos.
func NewInventoryCountRepository(pool *pgxpool.Pool) *InventoryCountRepo {
	return &InventoryCountRepo{pool: pool}
}

// Create inserta el conteo en una sola sentencia. created_at lo asigna la
// base (now()) y se devuelve al llamador; cualquier FK roto (producto, bodega
// o usuario borrados) retorna ErrNotFound sin registro parcial.
func (r *InventoryCountRepo) Create(count *entity.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts
			(id, count_number, cut_off_date, warehouse_code, product_code,
			 quantity_packaging, quantity_units, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`
	err := r.pool.QueryRow(context.Background(), query,
		count.ID, count.CountNumber, count.CutOffDate, count.WarehouseCode,
		count.ProductCode, count.QuantityPackaging, count.QuantityUnits, count.UserID,
	).Scan(&count.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inventory count: %w", err)
	}
	return nil
}

// ListReport devuelve todos los conteos con los nombres legibles de producto,
// bodega y usuario, más recientes primero. Sin filas devuelve lista vacía.
func (r *InventoryCountRepo) ListReport() ([]*entity.ReportRow, error) {
	query := `
		SELECT c.id, c.count_number, c.cut_off_date, c.warehouse_code, c.product_code,
		       c.quantity_packaging, c.quantity_units, c.user_id, c.created_at,
		       p.description, w.description, u.name
		FROM inventory_counts c
		JOIN products p ON p.code = c.product_code
		JOIN warehouses w ON w.code = c.warehouse_code
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list report: %w", err)
	}
	defer rows.Close()

	list := []*entity.ReportRow{}
	for rows.Next() {
		var row entity.ReportRow
		if err := rows.Scan(
			&row.Count.ID, &row.Count.CountNumber, &row.Count.CutOffDate,
			&row.Count.WarehouseCode, &row.Count.ProductCode,
			&row.Count.QuantityPackaging, &row.Count.QuantityUnits,
			&row.Count.UserID, &row.Count.CreatedAt,
			&row.ProductName, &row.WarehouseName, &row.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
