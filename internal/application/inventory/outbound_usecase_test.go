package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func outboundFixture() (*inventory.OutboundOrderUseCase, *fakeStockStore, *fakeProductRepo) {
	heavy := testProduct("p-1", "0001", "gcp-1", 10, 5)
	heavy.Weight = decimal.NewFromInt(2000)
	light := testProduct("p-2", "0002", "gcp-1", 10, 5)
	light.Weight = decimal.NewFromInt(2)

	products := newFakeProductRepo(heavy, light)
	store := newFakeStockStore()
	uc := inventory.NewOutboundOrderUseCase(&fakeTxRunner{store: store, products: products}, products)
	return uc, store, products
}

func TestOutbound_SinLineas(t *testing.T) {
	uc, _, _ := outboundFixture()

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{WarehouseID: testWarehouseID})

	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestOutbound_GtinDuplicado(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-1", testWarehouseID, 10)

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines: []dto.OrderLine{
			{Gtin: "0001", Quantity: 1},
			{Gtin: "0001", Quantity: 2},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 10, store.find("p-1", testWarehouseID).Held)
}

func TestOutbound_GtinsDesconocidosAgregados(t *testing.T) {
	uc, _, _ := outboundFixture()

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines: []dto.OrderLine{
			{Gtin: "8888", Quantity: 1},
			{Gtin: "0001", Quantity: 1},
			{Gtin: "9999", Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var plist *domain.ProblemList
	require.True(t, errors.As(err, &plist))
	require.Len(t, plist.Problems, 2)
	assert.Contains(t, plist.Problems[0], "8888")
	assert.Contains(t, plist.Problems[1], "9999")
}

// "Sin fila de stock" es una condición distinta de "stock insuficiente", pero
// ambas rechazan la orden completa dentro del mismo tipo de error.
func TestOutbound_SinStockEnBodega(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-1", testWarehouseID, 10)

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID + 1, // otra bodega, sin filas
		OrderLines:  []dto.OrderLine{{Gtin: "0001", Quantity: 3}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var plist *domain.ProblemList
	require.True(t, errors.As(err, &plist))
	require.Len(t, plist.Problems, 1)
	assert.Contains(t, plist.Problems[0], "0001")
	assert.Contains(t, plist.Problems[0], "sin stock")
	assert.Equal(t, 10, store.find("p-1", testWarehouseID).Held, "la otra bodega queda intacta")
}

func TestOutbound_StockInsuficiente(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-1", testWarehouseID, 10)

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines:  []dto.OrderLine{{Gtin: "0001", Quantity: 11}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var plist *domain.ProblemList
	require.True(t, errors.As(err, &plist))
	assert.Contains(t, plist.Problems[0], "stock en mano: 10")
	assert.Contains(t, plist.Problems[0], "cantidad a retirar: 11")
	assert.Equal(t, 10, store.find("p-1", testWarehouseID).Held, "rechazo sin mutación")
}

// Una línea válida no se aplica si otra falla: el lote es la unidad de
// aislamiento.
func TestOutbound_FalloParcialRechazaTodo(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-1", testWarehouseID, 10)
	store.set("p-2", testWarehouseID, 1)

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines: []dto.OrderLine{
			{Gtin: "0001", Quantity: 2},
			{Gtin: "0002", Quantity: 5},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.find("p-1", testWarehouseID).Held)
	assert.Equal(t, 1, store.find("p-2", testWarehouseID).Held)
}

func TestOutbound_DecrementoExactoDejaCero(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-2", testWarehouseID, 10)

	trucks, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines:  []dto.OrderLine{{Gtin: "0002", Quantity: 10}},
	})

	require.NoError(t, err)
	// peso total 20 -> un camión
	assert.Equal(t, 1, trucks)
	entry := store.find("p-2", testWarehouseID)
	require.NotNil(t, entry, "la fila no se borra al llegar a cero")
	assert.Equal(t, 0, entry.Held)
}

func TestOutbound_CamionesPorPesoTotal(t *testing.T) {
	uc, store, _ := outboundFixture()
	store.set("p-1", testWarehouseID, 10)
	store.set("p-2", testWarehouseID, 10)

	// 2 * 2000 + 3 * 2 = 4006 -> 3 camiones
	trucks, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines: []dto.OrderLine{
			{Gtin: "0001", Quantity: 2},
			{Gtin: "0002", Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, trucks)
	assert.Equal(t, 8, store.find("p-1", testWarehouseID).Held)
	assert.Equal(t, 7, store.find("p-2", testWarehouseID).Held)
}

func TestOutbound_CantidadNegativa(t *testing.T) {
	uc, _, _ := outboundFixture()

	_, err := uc.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID,
		OrderLines:  []dto.OrderLine{{Gtin: "0001", Quantity: -1}},
	})

	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestOutbound_EscenarioCompleto(t *testing.T) {
	// Producto con umbral 10, mínimo 5 y peso 2: con 3 en mano la orden de
	// reposición pide max(30-3, 5) = 27; una salida sobre otra bodega sin
	// fila de stock se rechaza sin tocar el libro.
	product := testProduct("p-9", "0009", "gcp-1", 10, 5)
	products := newFakeProductRepo(product)
	store := newFakeStockStore()
	store.set("p-9", testWarehouseID, 3)

	inboundUC := inventory.NewInboundOrderUseCase(
		newFakeEmployeeRepo(testManager()),
		newFakeCompanyRepo(&entity.Company{Gcp: "gcp-1"}),
		products,
		&fakeStockRepo{store: store},
	)
	outboundUC := inventory.NewOutboundOrderUseCase(&fakeTxRunner{store: store, products: products}, products)

	order, err := inboundUC.Generate(context.Background(), testWarehouseID)
	require.NoError(t, err)
	require.Len(t, order.OrderSegments, 1)
	require.Len(t, order.OrderSegments[0].OrderLines, 1)
	assert.Equal(t, 27, order.OrderSegments[0].OrderLines[0].Quantity)

	_, err = outboundUC.Apply(context.Background(), dto.OutboundOrderRequest{
		WarehouseID: testWarehouseID + 1,
		OrderLines:  []dto.OrderLine{{Gtin: "0009", Quantity: 3}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, store.find("p-9", testWarehouseID).Held)
}
