package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InboundOrderUC  *inventory.InboundOrderUseCase
	ManifestUC      *inventory.ManifestUseCase
	OutboundOrderUC *inventory.OutboundOrderUseCase
	StockQueryUC    *inventory.StockQueryUseCase
	ProductUC       *usecase.ProductUseCase
	CompanyUC       *usecase.CompanyUseCase
	EmployeeUC      *usecase.EmployeeUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(dto.Response{Success: true})
	})

	// Órdenes: reposición, manifiestos entrantes y salidas
	orders := app.Group("/orders")
	orderHandler := NewOrderHandler(deps.InboundOrderUC, deps.ManifestUC, deps.OutboundOrderUC)
	orders.Get("/inbound/:warehouseId", orderHandler.GetInboundOrder)
	orders.Post("/inbound", orderHandler.PostInboundManifest)
	orders.Post("/outbound", orderHandler.PostOutboundOrder)

	// Stock en mano
	stock := app.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQueryUC)
	stock.Get("/:warehouseId", stockHandler.GetStock)

	// Catálogo de productos
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.AddProducts)
	products.Get("/:gtin", productHandler.GetByGtin)
	products.Delete("/:gtin", productHandler.Discontinue)

	// Proveedores
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.AddCompanies)
	companies.Get("/:gcp", companyHandler.GetByGcp)

	// Empleados
	employees := app.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.GetByName)
	employees.Post("/", employeeHandler.AddEmployees)
	employees.Delete("/", employeeHandler.Remove)
	employees.Get("/:warehouseId", employeeHandler.GetByWarehouse)
}
