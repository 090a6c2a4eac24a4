package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// GetByName godoc
// @Summary      Consultar empleados por nombre
// @Tags         employees
// @Produce      json
// @Param        name  query  string  true  "Nombre del empleado"
// @Success      200  {array}   dto.EmployeeDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) GetByName(c *fiber.Ctx) error {
	employees, err := h.uc.GetByName(c.Context(), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employees)
}

// GetByWarehouse godoc
// @Summary      Consultar empleados de una bodega
// @Tags         employees
// @Produce      json
// @Param        warehouseId  path  int  true  "ID de la bodega"
// @Success      200  {array}   dto.EmployeeDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{warehouseId} [get]
func (h *EmployeeHandler) GetByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := c.ParamsInt("warehouseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_REQUEST", Message: "warehouseId inválido"})
	}
	employees, err := h.uc.GetByWarehouse(c.Context(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employees)
}

// AddEmployees godoc
// @Summary      Alta por lote de empleados
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEmployeesRequest  true  "empleados a registrar"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) AddEmployees(c *fiber.Ctx) error {
	var req dto.AddEmployeesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddEmployees(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true})
}

// Remove godoc
// @Summary      Eliminar empleado por nombre
// @Tags         employees
// @Produce      json
// @Param        name  query  string  true  "Nombre del empleado"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees [delete]
func (h *EmployeeHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), c.Query("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true})
}
