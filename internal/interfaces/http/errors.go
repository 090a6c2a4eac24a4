package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// respondError traduce el catálogo de errores de dominio a HTTP. Los handlers
// hacen branch sobre el tipo de error, nunca sobre el texto del mensaje; si el
// error agrega una lista de problemas, la respuesta la incluye.
func respondError(c *fiber.Ctx, err error) error {
	var problems []string
	var plist *domain.ProblemList
	if errors.As(err, &plist) {
		problems = plist.Problems
	}

	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_REQUEST", Message: err.Error(), Problems: problems})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error(), Problems: problems})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error(), Problems: problems})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error(), Problems: problems})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error(), Problems: problems})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
