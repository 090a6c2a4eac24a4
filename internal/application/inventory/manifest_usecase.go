package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	inv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ManifestUseCase valida un manifiesto de entrega entrante contra el catálogo
// y lo aplica al libro de stock como un incremento atómico. O el manifiesto
// entero pasa, o no se muta nada.
type ManifestUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewManifestUseCase construye el caso de uso.
func NewManifestUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ManifestUseCase {
	return &ManifestUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Apply valida el manifiesto acumulando todas las violaciones (gtins duplicados,
// gtins desconocidos, GCP que no coincide) y solo si no hay ninguna aplica todas
// las líneas como un lote dentro de una transacción.
func (uc *ManifestUseCase) Apply(ctx context.Context, req dto.InboundManifestRequest) error {
	log.Info().Int("warehouse_id", req.WarehouseID).Str("gcp", req.Gcp).
		Int("lines", len(req.OrderLines)).Msg("procesando manifiesto entrante")

	if len(req.OrderLines) == 0 {
		return fmt.Errorf("%w: el manifiesto no contiene líneas", domain.ErrMalformedRequest)
	}
	for _, line := range req.OrderLines {
		if line.Quantity < 0 {
			return fmt.Errorf("%w: cantidad negativa para el gtin %s", domain.ErrMalformedRequest, line.Gtin)
		}
	}

	var problems []string

	seen := make(map[string]bool, len(req.OrderLines))
	gtins := make([]string, 0, len(req.OrderLines))
	for _, line := range req.OrderLines {
		if seen[line.Gtin] {
			problems = append(problems, fmt.Sprintf("gtin duplicado en el manifiesto: %s", line.Gtin))
			continue
		}
		seen[line.Gtin] = true
		gtins = append(gtins, line.Gtin)
	}

	products, err := uc.productRepo.GetByGtins(gtins)
	if err != nil {
		return err
	}

	alterations := make([]inv.StockAlteration, 0, len(gtins))
	for _, gtin := range gtins {
		product, ok := products[gtin]
		if !ok {
			problems = append(problems, fmt.Sprintf("gtin desconocido: %s", gtin))
			continue
		}
		if product.Gcp != req.Gcp {
			problems = append(problems, fmt.Sprintf("el GCP del manifiesto (%s) no coincide con el GCP del producto (%s)", req.Gcp, product.Gcp))
			continue
		}
		alt, err := inv.NewStockAlteration(product.ID, quantityFor(req.OrderLines, gtin), product.Weight)
		if err != nil {
			return err
		}
		alterations = append(alterations, alt)
	}

	if len(problems) > 0 {
		log.Debug().Strs("problems", problems).Msg("manifiesto rechazado por inconsistencias")
		return domain.NewProblemList(domain.ErrValidation, problems)
	}

	// Incremento por lote: cada fila se bloquea y actualiza dentro de la misma
	// transacción; cualquier error revierte el manifiesto completo.
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		now := time.Now()
		for _, alt := range alterations {
			stock, err := stockRepo.GetForUpdate(alt.ProductID, req.WarehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				stock = &entity.Stock{ProductID: alt.ProductID, WarehouseID: req.WarehouseID}
			}
			stock.Held += alt.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("warehouse_id", req.WarehouseID).Msg("stock incrementado con el manifiesto")
	return nil
}

// quantityFor devuelve la cantidad de la primera línea con ese gtin.
func quantityFor(lines []dto.OrderLine, gtin string) int {
	for _, line := range lines {
		if line.Gtin == gtin {
			return line.Quantity
		}
	}
	return 0
}
