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

// OutboundOrderUseCase valida una orden de salida contra el stock disponible,
// la aplica como un decremento atómico y calcula los camiones necesarios para
// despachar el peso total.
type OutboundOrderUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewOutboundOrderUseCase construye el caso de uso.
func NewOutboundOrderUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *OutboundOrderUseCase {
	return &OutboundOrderUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Apply procesa la orden en etapas: estructura (duplicados, cantidades),
// resolución contra el catálogo (gtins desconocidos, agregados), y dentro de
// una misma transacción la verificación de disponibilidad línea a línea y el
// decremento del lote. La verificación y el decremento comparten transacción
// y bloqueos de fila, de modo que dos salidas concurrentes sobre el mismo
// stock no puedan aprobarse ambas contra la misma cantidad.
// Devuelve los camiones requeridos: ceil(pesoTotal / 2000).
func (uc *OutboundOrderUseCase) Apply(ctx context.Context, req dto.OutboundOrderRequest) (int, error) {
	log.Info().Int("warehouse_id", req.WarehouseID).Int("lines", len(req.OrderLines)).
		Msg("procesando orden de salida")

	if len(req.OrderLines) == 0 {
		return 0, fmt.Errorf("%w: la orden no contiene líneas", domain.ErrMalformedRequest)
	}

	seen := make(map[string]bool, len(req.OrderLines))
	var duplicates []string
	gtins := make([]string, 0, len(req.OrderLines))
	for _, line := range req.OrderLines {
		if line.Quantity < 0 {
			return 0, fmt.Errorf("%w: cantidad negativa para el gtin %s", domain.ErrMalformedRequest, line.Gtin)
		}
		if seen[line.Gtin] {
			duplicates = append(duplicates, fmt.Sprintf("gtin duplicado en la orden de salida: %s", line.Gtin))
			continue
		}
		seen[line.Gtin] = true
		gtins = append(gtins, line.Gtin)
	}
	if len(duplicates) > 0 {
		return 0, domain.NewProblemList(domain.ErrValidation, duplicates)
	}

	products, err := uc.productRepo.GetByGtins(gtins)
	if err != nil {
		return 0, err
	}

	var unknown []string
	alterations := make([]inv.StockAlteration, 0, len(req.OrderLines))
	lineGtins := make([]string, 0, len(req.OrderLines))
	for _, line := range req.OrderLines {
		product, ok := products[line.Gtin]
		if !ok {
			unknown = append(unknown, fmt.Sprintf("gtin desconocido: %s", line.Gtin))
			continue
		}
		alt, err := inv.NewStockAlteration(product.ID, line.Quantity, product.Weight)
		if err != nil {
			return 0, err
		}
		alterations = append(alterations, alt)
		lineGtins = append(lineGtins, line.Gtin)
	}
	if len(unknown) > 0 {
		return 0, domain.NewProblemList(domain.ErrNotFound, unknown)
	}

	// Verificación de disponibilidad y decremento en la misma transacción:
	// primero se bloquean y revisan todas las filas, y solo si ninguna línea
	// falla se escribe el lote. Cualquier problema revierte todo.
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		now := time.Now()
		var problems []string
		held := make([]int, len(alterations))

		for i, alt := range alterations {
			stock, err := stockRepo.GetForUpdate(alt.ProductID, req.WarehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				problems = append(problems, fmt.Sprintf("Producto: %s, sin stock en la bodega", lineGtins[i]))
				continue
			}
			if stock.Held < alt.Quantity {
				problems = append(problems, fmt.Sprintf("Producto: %s, stock en mano: %d, cantidad a retirar: %d", lineGtins[i], stock.Held, alt.Quantity))
				continue
			}
			held[i] = stock.Held
		}
		if len(problems) > 0 {
			return domain.NewProblemList(domain.ErrInsufficientStock, problems)
		}

		for i, alt := range alterations {
			stock := &entity.Stock{
				ProductID:   alt.ProductID,
				WarehouseID: req.WarehouseID,
				Held:        held[i] - alt.Quantity,
				UpdatedAt:   now,
			}
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	trucks := inv.TrucksRequired(inv.TotalWeight(alterations))
	log.Info().Int("warehouse_id", req.WarehouseID).Int("trucks", trucks).Msg("orden de salida despachada")
	return trucks, nil
}
