package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/domain/payroll"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type RecordServiceImpl struct {
	db *database.DB
	payroll.RecordRepository
	employee.EmployeeRepository
	leave.RequestRepository
	attendance.SessionRepository
	logger  *slog.Logger
	taxRate decimal.Decimal
	now     func() time.Time
}

func NewRecordService(
	db *database.DB,
	recordRepository payroll.RecordRepository,
	employeeRepository employee.EmployeeRepository,
	requestRepository leave.RequestRepository,
	sessionRepository attendance.SessionRepository,
	logger *slog.Logger,
	taxRate decimal.Decimal,
) payroll.RecordService {
	if taxRate.IsZero() {
		taxRate = payroll.DefaultTaxRate
	}
	return &RecordServiceImpl{
		db:                 db,
		RecordRepository:   recordRepository,
		EmployeeRepository: employeeRepository,
		RequestRepository:  requestRepository,
		SessionRepository:  sessionRepository,
		logger:             logger,
		taxRate:            taxRate,
		now:                time.Now,
	}
}

// Generate implements payroll.RecordService.
func (s *RecordServiceImpl) Generate(ctx context.Context, req *payroll.GenerateRequest) (payroll.RecordResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, false, err
	}
	year, month, err := payroll.ParsePeriod(req.PayPeriod)
	if err != nil {
		return payroll.RecordResponse{}, false, err
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	if !req.Force {
		existing, err := s.RecordRepository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PayPeriod)
		if err == nil {
			return payroll.ToResponse(existing), false, nil
		}
		if err != payroll.ErrRecordNotFound {
			return payroll.RecordResponse{}, false, database.MapError(err)
		}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.RecordResponse{}, false, database.MapError(err)
	}

	periodStart, periodNext := payroll.PeriodBounds(year, month)
	periodEnd := payroll.PeriodEnd(year, month)

	unpaidDays, err := s.RequestRepository.SumApprovedUnpaidDays(ctx, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.RecordResponse{}, false, fmt.Errorf("failed to sum unpaid leave days: %w", database.MapError(err))
	}
	attendanceDays, err := s.SessionRepository.CountClosedInRange(ctx, req.EmployeeID, periodStart, periodNext)
	if err != nil {
		return payroll.RecordResponse{}, false, fmt.Errorf("failed to count attendance sessions: %w", database.MapError(err))
	}

	figures, err := payroll.Calculate(payroll.CalculationInput{
		BaseSalary:      emp.BaseSalary,
		Year:            year,
		Month:           month,
		UnpaidLeaveDays: decimal.NewFromFloat(unpaidDays),
		TaxRate:         s.taxRate,
		AttendanceDays:  attendanceDays,
	})
	if err != nil {
		return payroll.RecordResponse{}, false, err
	}

	record := payroll.Record{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		PayPeriod:        req.PayPeriod,
		BaseSalary:       emp.BaseSalary,
		TotalWorkingDays: figures.TotalWorkingDays,
		PaidDays:         figures.PaidDays,
		GrossEarnings:    figures.GrossEarnings,
		UnpaidLeaveDays:  decimal.NewFromFloat(unpaidDays),
		LeaveDeduction:   figures.LeaveDeduction,
		TaxDeduction:     figures.TaxDeduction,
		NetSalary:        figures.NetSalary,
		Status:           payroll.StatusCalculated,
	}

	stored, isNew, err := s.RecordRepository.Upsert(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, false, database.MapError(err)
	}

	s.logger.InfoContext(ctx, "payroll record generated",
		slog.String("employee_id", req.EmployeeID),
		slog.String("pay_period", req.PayPeriod),
		slog.Bool("is_new", isNew),
		slog.Int("attendance_days", figures.AttendanceDays),
		slog.String("net_salary", figures.NetSalary.String()),
	)

	return payroll.ToResponse(stored), isNew, nil
}

// MarkPaid implements payroll.RecordService.
func (s *RecordServiceImpl) MarkPaid(ctx context.Context, payrollID string) (payroll.RecordResponse, error) {
	if validator.IsEmpty(payrollID) {
		return payroll.RecordResponse{}, validator.ValidationErrors{{
			Field:   "payroll_id",
			Message: "payroll_id is required",
		}}
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	paid, err := s.RecordRepository.MarkPaid(ctx, payrollID, s.now().UTC())
	if err == nil {
		return payroll.ToResponse(paid), nil
	}
	if err != payroll.ErrNotCalculated {
		return payroll.RecordResponse{}, database.MapError(err)
	}

	// The conditional update changed nothing; resolve why.
	record, err := s.RecordRepository.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.RecordResponse{}, database.MapError(err)
	}
	if record.Status == payroll.StatusPaid {
		// paying twice is a no-op, not an error
		return payroll.ToResponse(record), nil
	}
	return payroll.RecordResponse{}, payroll.ErrNotCalculated
}

// GetRecord implements payroll.RecordService.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, employeeID, period string) (payroll.RecordResponse, error) {
	if !validator.IsValidPayPeriod(period) {
		return payroll.RecordResponse{}, payroll.ErrInvalidPeriod
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	record, err := s.RecordRepository.GetByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.RecordResponse{}, database.MapError(err)
	}
	return payroll.ToResponse(record), nil
}

// History implements payroll.RecordService.
func (s *RecordServiceImpl) History(ctx context.Context, employeeID string) (payroll.HistoryResponse, error) {
	if validator.IsEmpty(employeeID) {
		return payroll.HistoryResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	records, err := s.RecordRepository.HistoryFor(ctx, employeeID)
	if err != nil {
		return payroll.HistoryResponse{}, fmt.Errorf("failed to load payroll history: %w", database.MapError(err))
	}
	if len(records) == 0 {
		return payroll.HistoryResponse{}, payroll.ErrNoRecords
	}

	resp := payroll.HistoryResponse{
		EmployeeID: employeeID,
		Records:    make([]payroll.RecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, payroll.ToResponse(record))
	}
	return resp, nil
}
