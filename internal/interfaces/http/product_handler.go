package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetByGtin godoc
// @Summary      Consultar producto por gtin
// @Tags         products
// @Produce      json
// @Param        gtin  path  string  true  "GTIN del producto"
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{gtin} [get]
func (h *ProductHandler) GetByGtin(c *fiber.Ctx) error {
	product, err := h.uc.GetByGtin(c.Context(), c.Params("gtin"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// AddProducts godoc
// @Summary      Alta por lote de productos
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductsRequest  true  "productos a registrar"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) AddProducts(c *fiber.Ctx) error {
	var req dto.AddProductsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddProducts(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true})
}

// Discontinue godoc
// @Summary      Descontinuar producto por gtin
// @Tags         products
// @Produce      json
// @Param        gtin  path  string  true  "GTIN del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{gtin} [delete]
func (h *ProductHandler) Discontinue(c *fiber.Ctx) error {
	if err := h.uc.Discontinue(c.Context(), c.Params("gtin")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true})
}
