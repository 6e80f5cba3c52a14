package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	db *database.DB
	leave.RequestRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewLedgerService(db *database.DB, requestRepository leave.RequestRepository, employeeRepository employee.EmployeeRepository) leave.LedgerService {
	return &LedgerServiceImpl{
		db:                 db,
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// Submit implements leave.LedgerService.
func (s *LedgerServiceImpl) Submit(ctx context.Context, req *leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	totalDays, err := leave.TotalDaysBetween(start, end)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.RequestResponse{}, database.MapError(err)
	}

	request := leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", database.MapError(err))
	}

	return leave.ToResponse(created), nil
}

// Review implements leave.LedgerService.
func (s *LedgerServiceImpl) Review(ctx context.Context, req *leave.ReviewRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	status := leave.StatusRejected
	if leave.ReviewAction(req.Action) == leave.ActionApprove {
		status = leave.StatusApproved
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	// Conditional update: only a Pending request transitions, so a second
	// review of the same request fails no matter how the calls interleave.
	reviewed, err := s.RequestRepository.Review(ctx, req.LeaveID, status, req.ReviewerID, s.now().UTC())
	if err != nil {
		return leave.RequestResponse{}, database.MapError(err)
	}

	return leave.ToResponse(reviewed), nil
}

// List implements leave.LedgerService.
func (s *LedgerServiceImpl) List(ctx context.Context, req *leave.ListRequest) (leave.ListRequestsResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ListRequestsResponse{}, err
	}

	filter := leave.Filter{
		EmployeeID: req.EmployeeID,
		Page:       req.Page,
		Limit:      req.Limit,
	}
	if req.Status != nil {
		status := leave.Status(*req.Status)
		filter.Status = &status
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	requests, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", database.MapError(err))
	}

	resp := leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Requests:   make([]leave.RequestResponse, 0, len(requests)),
	}
	for _, request := range requests {
		resp.Requests = append(resp.Requests, leave.ToResponse(request))
	}
	return resp, nil
}

// ApprovedUnpaidDaysInPeriod implements leave.LedgerService.
func (s *LedgerServiceImpl) ApprovedUnpaidDaysInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (float64, error) {
	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	days, err := s.RequestRepository.SumApprovedUnpaidDays(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unpaid leave days: %w", database.MapError(err))
	}
	return days, nil
}
