package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new employee with an RFID card
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists all employees ordered by name
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee updates an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee record
	DeleteEmployee(ctx context.Context, id string) error

	// ListTenure reports how long each employee has been with the company
	ListTenure(ctx context.Context) ([]TenureResponse, error)
}
