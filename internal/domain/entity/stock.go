package entity

import "time"

// Stock representa la cantidad en mano de un producto en una bodega.
// Invariante: Held nunca es negativo. La fila se crea con el primer ingreso
// y no se borra; "sin fila" y "cantidad cero" son condiciones distintas para
// el procesamiento de órdenes de salida.
type Stock struct {
	ProductID   string
	WarehouseID int
	Held        int
	UpdatedAt   time.Time
}
