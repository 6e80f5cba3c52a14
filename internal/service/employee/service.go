package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
	"github.com/staffloop/hrm-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}
	if exists {
		return employee.EmployeeResponse{}, user.ErrEmailExists
	}

	exists, err = s.EmployeeRepository.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)
	baseSalary, _ := decimal.NewFromString(req.BaseSalary)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		account, err := s.UserRepository.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: passwordHash,
			Role:         role,
		})
		if err != nil {
			return fmt.Errorf("failed to create login account: %w", err)
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:           uuid.NewString(),
			UserID:       account.ID,
			EmployeeCode: req.EmployeeCode,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PhoneNumber:  req.PhoneNumber,
			Department:   req.Department,
			Designation:  req.Designation,
			JoiningDate:  joiningDate,
			BaseSalary:   baseSalary,
			Status:       employee.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		if err := s.UserRepository.LinkEmployee(txCtx, account.ID, created.ID); err != nil {
			return fmt.Errorf("failed to link employee to account: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}

	created.Email = &req.Email
	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", database.MapError(err))
	}

	resp := employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(emp))
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.BaseSalary != nil {
		emp.BaseSalary, _ = decimal.NewFromString(*req.BaseSalary)
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	emp.UpdatedAt = time.Now().UTC()

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, database.MapError(err)
	}
	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return database.MapError(err)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.EmployeeRepository.Delete(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if emp.UserID != "" {
			if err := s.UserRepository.Delete(txCtx, emp.UserID); err != nil {
				return fmt.Errorf("failed to delete login account: %w", err)
			}
		}
		return nil
	})
	return database.MapError(err)
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
