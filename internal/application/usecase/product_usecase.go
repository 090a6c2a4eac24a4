package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase gestiona el catálogo de productos: alta por lote, consulta
// por gtin y descontinuación. El alta por lote es transaccional.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	txRunner    inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, txRunner: txRunner}
}

// AddProducts valida y persiste un lote de productos nuevos en una sola
// transacción. Gtins duplicados dentro del lote son petición mal formada;
// gtins ya existentes en el catálogo son conflicto.
func (uc *ProductUseCase) AddProducts(ctx context.Context, req dto.AddProductsRequest) error {
	if len(req.Products) == 0 {
		return fmt.Errorf("%w: se esperaba al menos un producto", domain.ErrMalformedRequest)
	}

	var problems []string
	seen := make(map[string]bool, len(req.Products))
	gtins := make([]string, 0, len(req.Products))
	for _, p := range req.Products {
		if p.Gtin == "" {
			problems = append(problems, "producto sin gtin")
			continue
		}
		if seen[p.Gtin] {
			problems = append(problems, fmt.Sprintf("gtin duplicado en el lote: %s", p.Gtin))
			continue
		}
		seen[p.Gtin] = true
		gtins = append(gtins, p.Gtin)
		if p.Weight.LessThanOrEqual(decimal.Zero) {
			problems = append(problems, fmt.Sprintf("peso no positivo para el gtin %s", p.Gtin))
		}
		if p.LowerThreshold < 0 || p.MinimumOrderQuantity < 0 {
			problems = append(problems, fmt.Sprintf("umbral o cantidad mínima negativos para el gtin %s", p.Gtin))
		}
	}
	if len(problems) > 0 {
		return domain.NewProblemList(domain.ErrMalformedRequest, problems)
	}

	existing, err := uc.productRepo.GetByGtins(gtins)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		conflicts := make([]string, 0, len(existing))
		for _, gtin := range gtins {
			if _, ok := existing[gtin]; ok {
				conflicts = append(conflicts, fmt.Sprintf("gtin ya registrado: %s", gtin))
			}
		}
		return domain.NewProblemList(domain.ErrDuplicate, conflicts)
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(_ repository.StockRepository, productRepo repository.ProductRepository) error {
		for _, p := range req.Products {
			product := &entity.Product{
				ID:                   uuid.New().String(),
				Gtin:                 p.Gtin,
				Gcp:                  p.Gcp,
				Name:                 p.Name,
				Weight:               p.Weight,
				LowerThreshold:       p.LowerThreshold,
				MinimumOrderQuantity: p.MinimumOrderQuantity,
				CreatedAt:            now,
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByGtin devuelve el producto del catálogo para un gtin.
func (uc *ProductUseCase) GetByGtin(ctx context.Context, gtin string) (*dto.ProductDTO, error) {
	if gtin == "" {
		return nil, fmt.Errorf("%w: gtin vacío", domain.ErrMalformedRequest)
	}
	product, err := uc.productRepo.GetByGtin(gtin)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: no existe producto con gtin %s", domain.ErrNotFound, gtin)
	}
	view := dto.NewProductDTO(product)
	return &view, nil
}

// Discontinue marca el producto como descontinuado. La operación es
// idempotente: descontinuar dos veces es un éxito sin efecto; solo un gtin
// inexistente produce error.
func (uc *ProductUseCase) Discontinue(ctx context.Context, gtin string) error {
	if gtin == "" {
		return fmt.Errorf("%w: gtin vacío", domain.ErrMalformedRequest)
	}
	ok, err := uc.productRepo.Discontinue(gtin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no existe producto con gtin %s", domain.ErrNotFound, gtin)
	}
	return nil
}
