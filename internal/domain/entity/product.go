package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo identificado externamente por su
// GTIN (código de barras, único e inmutable) y agrupado por proveedor vía GCP.
// Weight es el peso por unidad; LowerThreshold y MinimumOrderQuantity gobiernan
// la generación de órdenes de reposición. Nunca se borra: solo se descontinúa.
type Product struct {
	ID                   string // surrogate interno (UUID)
	Gtin                 string
	Gcp                  string // código del proveedor
	Name                 string
	Weight               decimal.Decimal // peso por unidad, siempre > 0
	LowerThreshold       int
	MinimumOrderQuantity int
	Discontinued         bool
	CreatedAt            time.Time
}
