package dto

// OrderLine línea de pedido a nivel de wire: gtin + cantidad, antes de
// resolverse contra el catálogo.
type OrderLine struct {
	Gtin     string `json:"gtin"`
	Quantity int    `json:"quantity"`
}

// InboundManifestRequest manifiesto de entrega entrante de un proveedor.
type InboundManifestRequest struct {
	WarehouseID int         `json:"warehouse_id"`
	Gcp         string      `json:"gcp"`
	OrderLines  []OrderLine `json:"order_lines"`
}

// OutboundOrderRequest orden de salida contra el stock de una bodega.
type OutboundOrderRequest struct {
	WarehouseID int         `json:"warehouse_id"`
	OrderLines  []OrderLine `json:"order_lines"`
}

// OutboundOrderResponse resultado de una orden de salida: camiones requeridos
// según el peso total despachado.
type OutboundOrderResponse struct {
	Trucks int `json:"trucks"`
}

// InboundOrderLine línea de reposición generada.
type InboundOrderLine struct {
	Gtin     string `json:"gtin"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderSegment líneas de reposición agrupadas por proveedor.
type OrderSegment struct {
	Company    CompanyDTO         `json:"company"`
	OrderLines []InboundOrderLine `json:"order_lines"`
}

// StockLevelDTO cantidad en mano de un producto en una bodega. Un producto
// sin fila de stock se reporta con cero.
type StockLevelDTO struct {
	Gtin string `json:"gtin"`
	Name string `json:"name"`
	Held int    `json:"held"`
}

// InboundOrderResponse orden de reposición generada para una bodega.
type InboundOrderResponse struct {
	OperationsManager EmployeeDTO    `json:"operations_manager"`
	WarehouseID       int            `json:"warehouse_id"`
	OrderSegments     []OrderSegment `json:"order_segments"`
}
