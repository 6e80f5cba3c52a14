package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password,omitempty"`
	Role         string  `json:"role,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	JoiningDate  string  `json:"joining_date"`
	BaseSalary   string  `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if salary, err := decimal.NewFromString(r.BaseSalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	BaseSalary  *string `json:"base_salary,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.BaseSalary != nil {
		if salary, err := decimal.NewFromString(*r.BaseSalary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a non-negative number",
			})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Active, On Leave, Terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	JoiningDate  string  `json:"joining_date"`
	BaseSalary   string  `json:"base_salary"`
	Status       string  `json:"status"`
}

// ToResponse converts an employee entity to its API shape.
func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		PhoneNumber:  emp.PhoneNumber,
		Department:   emp.Department,
		Designation:  emp.Designation,
		JoiningDate:  emp.JoiningDate.Format("2006-01-02"),
		BaseSalary:   emp.BaseSalary.StringFixed(2),
		Status:       string(emp.Status),
	}
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
