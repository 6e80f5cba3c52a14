package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `e.id, e.user_id, e.employee_code, e.first_name, e.last_name, e.phone_number, e.department, e.designation, e.joining_date, e.base_salary, e.status, e.created_at, e.updated_at, u.email`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.PhoneNumber,
		&e.Department, &e.Designation, &e.JoiningDate, &e.BaseSalary, &e.Status,
		&e.CreatedAt, &e.UpdatedAt, &e.Email,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, employee_code, first_name, last_name, phone_number, department, designation, joining_date, base_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.PhoneNumber,
		emp.Department, emp.Designation, emp.JoiningDate, emp.BaseSalary, emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return emp, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employee_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, phone_number = $4, department = $5,
			designation = $6, base_salary = $7, status = $8, updated_at = now()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.PhoneNumber,
		emp.Department, emp.Designation, emp.BaseSalary, emp.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE 1=1`
	var args []interface{}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		where += fmt.Sprintf(` AND e.department = $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND e.status = $%d`, len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees e `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		%s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d`,
		employeeColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, total, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountByStatus implements employee.EmployeeRepository.
func (r *employeeRepository) CountByStatus(ctx context.Context) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total, active int64
	err := q.QueryRow(ctx, `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Active') FROM employees`).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count employees by status: %w", err)
	}
	return total, active, nil
}
