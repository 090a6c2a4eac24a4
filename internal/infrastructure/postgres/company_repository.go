package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para proveedores.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (gcp, name, address, city, tel, mail)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		company.Gcp, company.Name, company.Address, company.City, company.Tel, company.Mail,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: gcp %s", domain.ErrDuplicate, company.Gcp)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByGcp obtiene un proveedor por GCP.
func (r *CompanyRepo) GetByGcp(gcp string) (*entity.Company, error) {
	query := `
		SELECT gcp, name, address, city, tel, mail
		FROM companies WHERE gcp = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, gcp).Scan(
		&c.Gcp, &c.Name, &c.Address, &c.City, &c.Tel, &c.Mail,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByGcps resuelve varios GCPs en un viaje. El mapa omite los no encontrados.
func (r *CompanyRepo) GetByGcps(gcps []string) (map[string]*entity.Company, error) {
	query := `
		SELECT gcp, name, address, city, tel, mail
		FROM companies WHERE gcp = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, gcps)
	if err != nil {
		return nil, fmt.Errorf("get companies: %w", err)
	}
	defer rows.Close()

	result := make(map[string]*entity.Company, len(gcps))
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Gcp, &c.Name, &c.Address, &c.City, &c.Tel, &c.Mail); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		result[c.Gcp] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return result, nil
}
