package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// TruckCapacity capacidad de carga de un camión en unidades de peso.
// Una orden de salida se despacha en ceil(pesoTotal / TruckCapacity) camiones.
var TruckCapacity = decimal.NewFromInt(2000)

// StockAlteration es la unidad de trabajo de una mutación de stock: un producto,
// una cantidad no negativa y el peso total derivado. Es un valor transitorio,
// nunca se persiste. El peso unitario lo inyecta el caller (viene del catálogo);
// el valor no construye sus propias dependencias.
type StockAlteration struct {
	ProductID   string
	Quantity    int
	TotalWeight decimal.Decimal
}

// NewStockAlteration construye la alteración validando la cantidad en el
// constructor: una cantidad negativa se rechaza como petición mal formada.
func NewStockAlteration(productID string, quantity int, unitWeight decimal.Decimal) (StockAlteration, error) {
	if quantity < 0 {
		return StockAlteration{}, fmt.Errorf("%w: la cantidad de la alteración debe ser positiva", domain.ErrMalformedRequest)
	}
	return StockAlteration{
		ProductID:   productID,
		Quantity:    quantity,
		TotalWeight: unitWeight.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// TotalWeight suma el peso de todas las alteraciones de un lote.
func TotalWeight(items []StockAlteration) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalWeight)
	}
	return total
}

// TrucksRequired calcula los camiones necesarios para un peso total:
// ceil(pesoTotal / TruckCapacity). Peso cero requiere cero camiones.
func TrucksRequired(totalWeight decimal.Decimal) int {
	if totalWeight.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(totalWeight.Div(TruckCapacity).Ceil().IntPart())
}
