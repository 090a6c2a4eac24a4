package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// OrderHandler maneja las peticiones HTTP de órdenes de reposición, manifiestos
// entrantes y órdenes de salida.
type OrderHandler struct {
	inboundUC  *inventory.InboundOrderUseCase
	manifestUC *inventory.ManifestUseCase
	outboundUC *inventory.OutboundOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	inboundUC *inventory.InboundOrderUseCase,
	manifestUC *inventory.ManifestUseCase,
	outboundUC *inventory.OutboundOrderUseCase,
) *OrderHandler {
	return &OrderHandler{inboundUC: inboundUC, manifestUC: manifestUC, outboundUC: outboundUC}
}

// GetInboundOrder godoc
// @Summary      Generar orden de reposición para una bodega
// @Tags         orders
// @Produce      json
// @Param        warehouseId  path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.InboundOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/inbound/{warehouseId} [get]
func (h *OrderHandler) GetInboundOrder(c *fiber.Ctx) error {
	warehouseID, err := c.ParamsInt("warehouseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_REQUEST", Message: "warehouseId inválido"})
	}
	order, err := h.inboundUC.Generate(c.Context(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// PostInboundManifest godoc
// @Summary      Aplicar manifiesto de entrega entrante
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundManifestRequest  true  "warehouse_id, gcp, order_lines"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /orders/inbound [post]
func (h *OrderHandler) PostInboundManifest(c *fiber.Ctx) error {
	var req dto.InboundManifestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.manifestUC.Apply(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true})
}

// PostOutboundOrder godoc
// @Summary      Aplicar orden de salida y calcular camiones
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundOrderRequest  true  "warehouse_id, order_lines"
// @Success      200  {object}  dto.OutboundOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /orders/outbound [post]
func (h *OrderHandler) PostOutboundOrder(c *fiber.Ctx) error {
	var req dto.OutboundOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	trucks, err := h.outboundUC.Apply(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OutboundOrderResponse{Trucks: trucks})
}
