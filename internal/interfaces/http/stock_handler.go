package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// StockHandler maneja las consultas de stock por bodega.
type StockHandler struct {
	uc *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStock godoc
// @Summary      Consultar stock en mano por bodega y gtins
// @Tags         stock
// @Produce      json
// @Param        warehouseId  path   int     true  "ID de la bodega"
// @Param        gtins        query  string  true  "GTINs separados por coma"
// @Success      200  {array}   dto.StockLevelDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock/{warehouseId} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	warehouseID, err := c.ParamsInt("warehouseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_REQUEST", Message: "warehouseId inválido"})
	}
	var gtins []string
	if raw := c.Query("gtins"); raw != "" {
		gtins = strings.Split(raw, ",")
	}
	levels, err := h.uc.Get(c.Context(), warehouseID, gtins)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(levels)
}
