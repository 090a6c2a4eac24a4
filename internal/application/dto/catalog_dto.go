package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductRequest producto a dar de alta en el catálogo.
type ProductRequest struct {
	Gtin                 string          `json:"gtin"`
	Gcp                  string          `json:"gcp"`
	Name                 string          `json:"name"`
	Weight               decimal.Decimal `json:"weight"`
	LowerThreshold       int             `json:"lower_threshold"`
	MinimumOrderQuantity int             `json:"minimum_order_quantity"`
}

// AddProductsRequest alta por lote de productos.
type AddProductsRequest struct {
	Products []ProductRequest `json:"products"`
}

// ProductDTO vista de un producto del catálogo.
type ProductDTO struct {
	ID                   string          `json:"id"`
	Gtin                 string          `json:"gtin"`
	Gcp                  string          `json:"gcp"`
	Name                 string          `json:"name"`
	Weight               decimal.Decimal `json:"weight"`
	LowerThreshold       int             `json:"lower_threshold"`
	MinimumOrderQuantity int             `json:"minimum_order_quantity"`
	Discontinued         bool            `json:"discontinued"`
}

// NewProductDTO proyecta la entidad al DTO de respuesta.
func NewProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:                   p.ID,
		Gtin:                 p.Gtin,
		Gcp:                  p.Gcp,
		Name:                 p.Name,
		Weight:               p.Weight,
		LowerThreshold:       p.LowerThreshold,
		MinimumOrderQuantity: p.MinimumOrderQuantity,
		Discontinued:         p.Discontinued,
	}
}

// CompanyDTO vista (y alta) de un proveedor.
type CompanyDTO struct {
	Gcp     string `json:"gcp"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Tel     string `json:"tel"`
	Mail    string `json:"mail"`
}

// AddCompaniesRequest alta por lote de proveedores.
type AddCompaniesRequest struct {
	Companies []CompanyDTO `json:"companies"`
}

// NewCompanyDTO proyecta la entidad al DTO de respuesta.
func NewCompanyDTO(c *entity.Company) CompanyDTO {
	return CompanyDTO{Gcp: c.Gcp, Name: c.Name, Address: c.Address, City: c.City, Tel: c.Tel, Mail: c.Mail}
}

// EmployeeDTO vista (y alta) de un empleado.
type EmployeeDTO struct {
	Name        string `json:"name"`
	WarehouseID int    `json:"warehouse_id"`
	Role        string `json:"role"`
	Extension   string `json:"extension"`
}

// AddEmployeesRequest alta por lote de empleados.
type AddEmployeesRequest struct {
	Employees []EmployeeDTO `json:"employees"`
}

// NewEmployeeDTO proyecta la entidad al DTO de respuesta.
func NewEmployeeDTO(e *entity.Employee) EmployeeDTO {
	return EmployeeDTO{Name: e.Name, WarehouseID: e.WarehouseID, Role: e.Role, Extension: e.Extension}
}
