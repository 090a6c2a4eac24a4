package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockRepository define el puerto del libro de stock por bodega+producto.
// Las mutaciones solo ocurren dentro de una transacción (vía TxRunner) para
// garantizar que el lote completo se aplica o se revierte.
type StockRepository interface {
	// Get devuelve las filas existentes para los productos dados en la bodega.
	// El mapa omite los productos sin fila: ausencia != cantidad cero.
	Get(warehouseID int, productIDs []string) (map[string]*entity.Stock, error)
	// GetAllByWarehouse devuelve el snapshot completo de una bodega.
	GetAllByWarehouse(warehouseID int) ([]*entity.Stock, error)
	// GetForUpdate obtiene la fila bloqueándola para update (SELECT FOR UPDATE).
	// Devuelve nil si no existe fila para el par producto+bodega.
	GetForUpdate(productID string, warehouseID int) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
}
