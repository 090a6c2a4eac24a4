package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo de
// productos (DIP). Los productos nunca se borran, solo se descontinúan.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByGtin(gtin string) (*entity.Product, error)
	// GetByGtins resuelve varios gtins en un viaje; el mapa omite los no encontrados.
	GetByGtins(gtins []string) (map[string]*entity.Product, error)
	// Discontinue marca el producto como descontinuado. Devuelve false si el
	// gtin no existe. Repetir la operación sobre un producto ya descontinuado
	// es un éxito sin efecto.
	Discontinue(gtin string) (bool, error)
}
