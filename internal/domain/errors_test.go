package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

func TestProblemList_ConservaElTipo(t *testing.T) {
	err := domain.NewProblemList(domain.ErrInsufficientStock, []string{"a", "b"})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "stock insuficiente: a; b", err.Error())
}

func TestProblemList_SobreviveWrapping(t *testing.T) {
	inner := domain.NewProblemList(domain.ErrValidation, []string{"gtin duplicado: 0001"})
	wrapped := fmt.Errorf("aplicar manifiesto: %w", inner)

	assert.ErrorIs(t, wrapped, domain.ErrValidation)

	var plist *domain.ProblemList
	assert.True(t, errors.As(wrapped, &plist))
	assert.Len(t, plist.Problems, 1)
}
