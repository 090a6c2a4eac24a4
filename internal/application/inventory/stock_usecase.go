package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockQueryUseCase consulta el libro de stock de una bodega por gtin.
// Solo lectura.
type StockQueryUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *StockQueryUseCase {
	return &StockQueryUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// Get devuelve la cantidad en mano por gtin en la bodega. Un producto sin fila
// de stock se reporta con cantidad cero.
func (uc *StockQueryUseCase) Get(ctx context.Context, warehouseID int, gtins []string) ([]dto.StockLevelDTO, error) {
	if len(gtins) == 0 {
		return nil, fmt.Errorf("%w: se esperaba al menos un gtin", domain.ErrMalformedRequest)
	}

	products, err := uc.productRepo.GetByGtins(gtins)
	if err != nil {
		return nil, err
	}
	var unknown []string
	productIDs := make([]string, 0, len(gtins))
	for _, gtin := range gtins {
		product, ok := products[gtin]
		if !ok {
			unknown = append(unknown, fmt.Sprintf("gtin desconocido: %s", gtin))
			continue
		}
		productIDs = append(productIDs, product.ID)
	}
	if len(unknown) > 0 {
		return nil, domain.NewProblemList(domain.ErrNotFound, unknown)
	}

	stock, err := uc.stockRepo.Get(warehouseID, productIDs)
	if err != nil {
		return nil, err
	}

	levels := make([]dto.StockLevelDTO, 0, len(gtins))
	for _, gtin := range gtins {
		product := products[gtin]
		held := 0
		if entry, ok := stock[product.ID]; ok {
			held = entry.Held
		}
		levels = append(levels, dto.StockLevelDTO{Gtin: gtin, Name: product.Name, Held: held})
	}
	return levels, nil
}
