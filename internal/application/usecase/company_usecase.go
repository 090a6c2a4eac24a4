package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CompanyUseCase gestiona los proveedores (GCP): alta por lote y consulta.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// AddCompanies valida y persiste un lote de proveedores nuevos.
func (uc *CompanyUseCase) AddCompanies(ctx context.Context, req dto.AddCompaniesRequest) error {
	if len(req.Companies) == 0 {
		return fmt.Errorf("%w: se esperaba al menos un proveedor", domain.ErrMalformedRequest)
	}

	var problems []string
	seen := make(map[string]bool, len(req.Companies))
	gcps := make([]string, 0, len(req.Companies))
	for _, c := range req.Companies {
		if c.Gcp == "" {
			problems = append(problems, "proveedor sin gcp")
			continue
		}
		if seen[c.Gcp] {
			problems = append(problems, fmt.Sprintf("gcp duplicado en el lote: %s", c.Gcp))
			continue
		}
		seen[c.Gcp] = true
		gcps = append(gcps, c.Gcp)
	}
	if len(problems) > 0 {
		return domain.NewProblemList(domain.ErrMalformedRequest, problems)
	}

	existing, err := uc.companyRepo.GetByGcps(gcps)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		conflicts := make([]string, 0, len(existing))
		for _, gcp := range gcps {
			if _, ok := existing[gcp]; ok {
				conflicts = append(conflicts, fmt.Sprintf("gcp ya registrado: %s", gcp))
			}
		}
		return domain.NewProblemList(domain.ErrDuplicate, conflicts)
	}

	for _, c := range req.Companies {
		company := &entity.Company{Gcp: c.Gcp, Name: c.Name, Address: c.Address, City: c.City, Tel: c.Tel, Mail: c.Mail}
		if err := uc.companyRepo.Create(company); err != nil {
			return err
		}
	}
	return nil
}

// GetByGcp devuelve el proveedor para un GCP.
func (uc *CompanyUseCase) GetByGcp(ctx context.Context, gcp string) (*dto.CompanyDTO, error) {
	if gcp == "" {
		return nil, fmt.Errorf("%w: gcp vacío", domain.ErrMalformedRequest)
	}
	company, err := uc.companyRepo.GetByGcp(gcp)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: no existe proveedor con gcp %s", domain.ErrNotFound, gcp)
	}
	view := dto.NewCompanyDTO(company)
	return &view, nil
}
