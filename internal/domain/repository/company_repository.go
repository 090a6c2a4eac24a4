package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para proveedores (GCP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByGcp(gcp string) (*entity.Company, error)
	// GetByGcps resuelve varios códigos en un viaje; el mapa omite los no encontrados.
	GetByGcps(gcps []string) (map[string]*entity.Company, error)
}
