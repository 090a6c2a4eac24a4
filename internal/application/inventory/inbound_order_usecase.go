package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InboundOrderUseCase genera la orden de reposición de una bodega: proyecta el
// stock actual contra los umbrales del catálogo y agrupa las líneas por
// proveedor. No muta nada.
type InboundOrderUseCase struct {
	employeeRepo repository.EmployeeRepository
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
}

// NewInboundOrderUseCase construye el caso de uso.
func NewInboundOrderUseCase(
	employeeRepo repository.EmployeeRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) *InboundOrderUseCase {
	return &InboundOrderUseCase{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
	}
}

// Generate recorre el snapshot de stock de la bodega y arma una línea de pedido
// por cada producto no descontinuado cuyo stock esté estrictamente por debajo
// de su umbral: cantidad = max(3*umbral - stock, cantidad mínima de pedido).
// Una bodega sin productos bajo umbral produce cero segmentos, no un error.
func (uc *InboundOrderUseCase) Generate(ctx context.Context, warehouseID int) (*dto.InboundOrderResponse, error) {
	log.Info().Int("warehouse_id", warehouseID).Msg("generando orden de reposición")

	manager, err := uc.employeeRepo.GetOperationsManager(warehouseID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, fmt.Errorf("%w: la bodega %d no tiene jefe de operaciones", domain.ErrNotFound, warehouseID)
	}

	allStock, err := uc.stockRepo.GetAllByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}

	// Un segmento por proveedor, en orden de aparición; dentro de cada segmento
	// las líneas conservan el orden en que se encontraron las filas de stock.
	segments := make([]dto.OrderSegment, 0)
	segmentIdx := make(map[string]int)

	for _, stock := range allStock {
		product, err := uc.productRepo.GetByID(stock.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s referenciado por el stock", domain.ErrNotFound, stock.ProductID)
		}
		if product.Discontinued {
			continue
		}
		if stock.Held >= product.LowerThreshold {
			continue
		}

		orderQuantity := product.LowerThreshold*3 - stock.Held
		if orderQuantity < product.MinimumOrderQuantity {
			orderQuantity = product.MinimumOrderQuantity
		}

		idx, ok := segmentIdx[product.Gcp]
		if !ok {
			company, err := uc.companyRepo.GetByGcp(product.Gcp)
			if err != nil {
				return nil, err
			}
			if company == nil {
				return nil, fmt.Errorf("%w: proveedor %s del producto %s", domain.ErrNotFound, product.Gcp, product.Gtin)
			}
			segments = append(segments, dto.OrderSegment{Company: dto.NewCompanyDTO(company)})
			idx = len(segments) - 1
			segmentIdx[product.Gcp] = idx
		}
		segments[idx].OrderLines = append(segments[idx].OrderLines, dto.InboundOrderLine{
			Gtin:     product.Gtin,
			Name:     product.Name,
			Quantity: orderQuantity,
		})
	}

	log.Debug().Int("warehouse_id", warehouseID).Int("segments", len(segments)).Msg("orden de reposición construida")

	return &dto.InboundOrderResponse{
		OperationsManager: dto.NewEmployeeDTO(manager),
		WarehouseID:       warehouseID,
		OrderSegments:     segments,
	}, nil
}
