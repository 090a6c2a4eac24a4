package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

const testWarehouseID = 17

func testManager() *entity.Employee {
	return &entity.Employee{Name: "Gloria", WarehouseID: testWarehouseID, Role: entity.RoleOperationsManager}
}

func testProduct(id, gtin, gcp string, threshold, moq int) *entity.Product {
	return &entity.Product{
		ID:                   id,
		Gtin:                 gtin,
		Gcp:                  gcp,
		Name:                 "producto " + gtin,
		Weight:               decimal.NewFromInt(2),
		LowerThreshold:       threshold,
		MinimumOrderQuantity: moq,
	}
}

func TestGenerate_BodegaSinJefeDeOperaciones(t *testing.T) {
	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(), newFakeCompanyRepo(), newFakeProductRepo(), &fakeStockRepo{store: newFakeStockStore()},
	)

	_, err := uc.Generate(context.Background(), testWarehouseID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_BodegaSinFaltantes(t *testing.T) {
	product := testProduct("p-1", "0001", "gcp-1", 10, 5)
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 50)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-1"}),
		newFakeProductRepo(product),
		&fakeStockRepo{store: store},
	)

	order, err := uc.Generate(context.Background(), testWarehouseID)

	require.NoError(t, err)
	assert.Equal(t, testWarehouseID, order.WarehouseID)
	assert.Equal(t, "Gloria", order.OperationsManager.Name)
	assert.Empty(t, order.OrderSegments, "sin productos bajo umbral no hay segmentos")
}

// El umbral es estricto: stock exactamente en el umbral no dispara reposición,
// una unidad por debajo sí.
func TestGenerate_UmbralEstricto(t *testing.T) {
	atThreshold := testProduct("p-1", "0001", "gcp-1", 10, 5)
	belowThreshold := testProduct("p-2", "0002", "gcp-1", 10, 5)
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 10)
	store.set("p-2", testWarehouseID, 9)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-1", Name: "Proveedor Uno"}),
		newFakeProductRepo(atThreshold, belowThreshold),
		&fakeStockRepo{store: store},
	)

	order, err := uc.Generate(context.Background(), testWarehouseID)

	require.NoError(t, err)
	require.Len(t, order.OrderSegments, 1)
	require.Len(t, order.OrderSegments[0].OrderLines, 1)
	assert.Equal(t, "0002", order.OrderSegments[0].OrderLines[0].Gtin)
	// max(3*10 - 9, 5) = 21
	assert.Equal(t, 21, order.OrderSegments[0].OrderLines[0].Quantity)
}

func TestGenerate_FormulaDeCantidad(t *testing.T) {
	// max(3*10 - 4, 5) = 26: manda la fórmula de triple umbral
	formulaWins := testProduct("p-1", "0001", "gcp-1", 10, 5)
	// max(3*2 - 1, 10) = 10: manda la cantidad mínima de pedido
	moqWins := testProduct("p-2", "0002", "gcp-1", 2, 10)
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 4)
	store.set("p-2", testWarehouseID, 1)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-1"}),
		newFakeProductRepo(formulaWins, moqWins),
		&fakeStockRepo{store: store},
	)

	order, err := uc.Generate(context.Background(), testWarehouseID)

	require.NoError(t, err)
	require.Len(t, order.OrderSegments, 1)
	lines := order.OrderSegments[0].OrderLines
	require.Len(t, lines, 2)
	assert.Equal(t, 26, lines[0].Quantity)
	assert.Equal(t, 10, lines[1].Quantity)
}

func TestGenerate_DescontinuadoExcluido(t *testing.T) {
	discontinued := testProduct("p-1", "0001", "gcp-1", 10, 5)
	discontinued.Discontinued = true
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 0)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-1"}),
		newFakeProductRepo(discontinued),
		&fakeStockRepo{store: store},
	)

	order, err := uc.Generate(context.Background(), testWarehouseID)

	require.NoError(t, err)
	assert.Empty(t, order.OrderSegments, "un descontinuado no se repone aunque esté en cero")
}

func TestGenerate_AgrupaPorProveedorEnOrdenDeAparicion(t *testing.T) {
	p1 := testProduct("p-1", "0001", "gcp-a", 10, 1)
	p2 := testProduct("p-2", "0002", "gcp-b", 10, 1)
	p3 := testProduct("p-3", "0003", "gcp-a", 10, 1)
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 1)
	store.set("p-2", testWarehouseID, 2)
	store.set("p-3", testWarehouseID, 3)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-a"}, &entity.Company{Gcp: "gcp-b"}),
		newFakeProductRepo(p1, p2, p3),
		&fakeStockRepo{store: store},
	)

	order, err := uc.Generate(context.Background(), testWarehouseID)

	require.NoError(t, err)
	require.Len(t, order.OrderSegments, 2)
	assert.Equal(t, "gcp-a", order.OrderSegments[0].Company.Gcp)
	assert.Equal(t, "gcp-b", order.OrderSegments[1].Company.Gcp)
	// Las líneas del mismo proveedor conservan el orden de las filas de stock
	require.Len(t, order.OrderSegments[0].OrderLines, 2)
	assert.Equal(t, "0001", order.OrderSegments[0].OrderLines[0].Gtin)
	assert.Equal(t, "0003", order.OrderSegments[0].OrderLines[1].Gtin)
}

func TestGenerate_ProveedorDesconocido(t *testing.T) {
	product := testProduct("p-1", "0001", "gcp-fantasma", 10, 5)
	store := newFakeStockStore()
	store.set("p-1", testWarehouseID, 0)

	uc := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(),
		newFakeProductRepo(product),
		&fakeStockRepo{store: store},
	)

	_, err := uc.Generate(context.Background(), testWarehouseID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
