package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, warehouse_id, role, extension)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		employee.Name, employee.WarehouseID, employee.Role, employee.Extension,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByName devuelve los empleados con ese nombre.
func (r *EmployeeRepo) GetByName(name string) ([]*entity.Employee, error) {
	query := `
		SELECT name, warehouse_id, role, extension
		FROM employees WHERE name = $1`
	return r.queryEmployees(query, name)
}

// GetByWarehouse devuelve los empleados asignados a una bodega.
func (r *EmployeeRepo) GetByWarehouse(warehouseID int) ([]*entity.Employee, error) {
	query := `
		SELECT name, warehouse_id, role, extension
		FROM employees WHERE warehouse_id = $1`
	return r.queryEmployees(query, warehouseID)
}

// GetOperationsManager devuelve el jefe de operaciones de la bodega, o nil si
// no tiene uno asignado.
func (r *EmployeeRepo) GetOperationsManager(warehouseID int) (*entity.Employee, error) {
	query := `
		SELECT name, warehouse_id, role, extension
		FROM employees WHERE warehouse_id = $1 AND role = $2
		LIMIT 1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, warehouseID, entity.RoleOperationsManager).Scan(
		&e.Name, &e.WarehouseID, &e.Role, &e.Extension,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operations manager: %w", err)
	}
	return &e, nil
}

// Remove elimina al empleado por nombre. Devuelve false si no existe.
func (r *EmployeeRepo) Remove(name string) (bool, error) {
	query := `DELETE FROM employees WHERE name = $1`
	cmd, err := r.q.Exec(context.Background(), query, name)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *EmployeeRepo) queryEmployees(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}
	defer rows.Close()

	var result []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.Name, &e.WarehouseID, &e.Role, &e.Extension); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return result, nil
}
