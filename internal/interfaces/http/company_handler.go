package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP de proveedores.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetByGcp godoc
// @Summary      Consultar proveedor por gcp
// @Tags         companies
// @Produce      json
// @Param        gcp  path  string  true  "GCP del proveedor"
// @Success      200  {object}  dto.CompanyDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{gcp} [get]
func (h *CompanyHandler) GetByGcp(c *fiber.Ctx) error {
	company, err := h.uc.GetByGcp(c.Context(), c.Params("gcp"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// AddCompanies godoc
// @Summary      Alta por lote de proveedores
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCompaniesRequest  true  "proveedores a registrar"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) AddCompanies(c *fiber.Ctx) error {
	var req dto.AddCompaniesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddCompanies(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true})
}
