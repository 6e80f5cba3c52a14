package employee

import "context"

// EmployeeService defines the employee directory operations.
type EmployeeService interface {
	// CreateEmployee creates the employee record and its linked login
	// account in one transaction.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context, filter Filter) (ListEmployeesResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and its linked account.
	DeleteEmployee(ctx context.Context, id string) error
}
