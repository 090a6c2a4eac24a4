package entity

// Employee representa un empleado asignado a una bodega. El rol
// RoleOperationsManager identifica al responsable que encabeza las órdenes
// de reposición generadas para su bodega.
type Employee struct {
	Name        string
	WarehouseID int
	Role        string
	Extension   string
}

// Roles reconocidos.
const (
	RoleOperationsManager = "OPERATIONS_MANAGER"
	RoleWarehouseManager  = "WAREHOUSE_MANAGER"
	RolePicker            = "PICKER"
	RoleCleaner           = "CLEANER"
)
