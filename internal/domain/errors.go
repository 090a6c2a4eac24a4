package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los callers hacen branch
// con errors.Is sobre el tipo de error, nunca sobre el texto del mensaje.
var (
	ErrMalformedRequest  = errors.New("petición mal formada")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("validación fallida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
)

// ProblemList agrupa todas las violaciones encontradas en una petición bajo un
// tipo de error del catálogo. La validación es exhaustiva: se reportan todos los
// problemas en un solo viaje, no solo el primero.
type ProblemList struct {
	Kind     error
	Problems []string
}

// NewProblemList construye el error agregado para un tipo dado.
func NewProblemList(kind error, problems []string) *ProblemList {
	return &ProblemList{Kind: kind, Problems: problems}
}

func (e *ProblemList) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), strings.Join(e.Problems, "; "))
}

// Unwrap permite errors.Is(err, domain.ErrValidation) y similares.
func (e *ProblemList) Unwrap() error {
	return e.Kind
}
