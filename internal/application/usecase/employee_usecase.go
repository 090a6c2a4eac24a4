package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// EmployeeUseCase gestiona los empleados de bodega.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo}
}

// AddEmployees persiste un lote de empleados.
func (uc *EmployeeUseCase) AddEmployees(ctx context.Context, req dto.AddEmployeesRequest) error {
	if len(req.Employees) == 0 {
		return fmt.Errorf("%w: se esperaba al menos un empleado", domain.ErrMalformedRequest)
	}
	for _, e := range req.Employees {
		if e.Name == "" {
			return fmt.Errorf("%w: empleado sin nombre", domain.ErrMalformedRequest)
		}
	}
	for _, e := range req.Employees {
		employee := &entity.Employee{Name: e.Name, WarehouseID: e.WarehouseID, Role: e.Role, Extension: e.Extension}
		if err := uc.employeeRepo.Create(employee); err != nil {
			return err
		}
	}
	return nil
}

// GetByName devuelve los empleados con ese nombre.
func (uc *EmployeeUseCase) GetByName(ctx context.Context, name string) ([]dto.EmployeeDTO, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: nombre vacío", domain.ErrMalformedRequest)
	}
	employees, err := uc.employeeRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("%w: no existe empleado con nombre %s", domain.ErrNotFound, name)
	}
	views := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		views = append(views, dto.NewEmployeeDTO(e))
	}
	return views, nil
}

// GetByWarehouse devuelve los empleados asignados a una bodega.
func (uc *EmployeeUseCase) GetByWarehouse(ctx context.Context, warehouseID int) ([]dto.EmployeeDTO, error) {
	employees, err := uc.employeeRepo.GetByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("%w: no hay empleados en la bodega %d", domain.ErrNotFound, warehouseID)
	}
	views := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		views = append(views, dto.NewEmployeeDTO(e))
	}
	return views, nil
}

// Remove elimina al empleado por nombre.
func (uc *EmployeeUseCase) Remove(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: nombre vacío", domain.ErrMalformedRequest)
	}
	ok, err := uc.employeeRepo.Remove(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no existe empleado con nombre %s", domain.ErrNotFound, name)
	}
	return nil
}
