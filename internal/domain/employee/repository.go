package employee

import "context"

// EmployeeRepository is the employee directory read/write surface. Payroll
// consumes it read-only for base salary and existence checks.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (total int64, active int64, err error)
}

// Filter enumerates the supported employee list predicates.
type Filter struct {
	Department *string
	Status     *Status
	Page       int
	Limit      int
}
