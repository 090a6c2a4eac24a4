package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByName(name string) ([]*entity.Employee, error)
	GetByWarehouse(warehouseID int) ([]*entity.Employee, error)
	// GetOperationsManager devuelve el jefe de operaciones de la bodega,
	// o nil si la bodega no tiene uno asignado.
	GetOperationsManager(warehouseID int) (*entity.Employee, error)
	// Remove elimina al empleado por nombre. Devuelve false si no existe.
	Remove(name string) (bool, error)
}
