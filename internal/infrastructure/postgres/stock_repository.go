package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get devuelve las filas de stock existentes para los productos dados en la
// bodega. Los productos sin fila no aparecen en el mapa.
func (r *StockRepo) Get(warehouseID int, productIDs []string) (map[string]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, held, updated_at
		FROM stock WHERE warehouse_id = $1 AND product_id = ANY($2)`
	rows, err := r.q.Query(context.Background(), query, warehouseID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	defer rows.Close()

	result := make(map[string]*entity.Stock, len(productIDs))
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Held, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		result[s.ProductID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock: %w", err)
	}
	return result, nil
}

// GetAllByWarehouse devuelve el snapshot completo de stock de una bodega.
func (r *StockRepo) GetAllByWarehouse(warehouseID int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, held, updated_at
		FROM stock WHERE warehouse_id = $1
		ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("get all stock: %w", err)
	}
	defer rows.Close()

	var result []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Held, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock: %w", err)
	}
	return result, nil
}

// GetForUpdate obtiene la fila de stock bloqueándola para update (SELECT FOR UPDATE).
// Devuelve nil si no existe fila: ausencia y cantidad cero son condiciones distintas.
func (r *StockRepo) GetForUpdate(productID string, warehouseID int) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, held, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Held, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
// El CHECK (held >= 0) de la tabla actúa como respaldo del invariante.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, held, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET held = EXCLUDED.held, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Held)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
