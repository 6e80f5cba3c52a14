package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type SessionServiceImpl struct {
	db *database.DB
	attendance.SessionRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewSessionService(db *database.DB, sessionRepository attendance.SessionRepository, employeeRepository employee.EmployeeRepository) attendance.SessionService {
	return &SessionServiceImpl{
		db:                 db,
		SessionRepository:  sessionRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// PunchIn implements attendance.SessionService.
func (s *SessionServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SessionResponse{}, database.MapError(err)
	}

	punchIn := s.now().UTC()
	session := attendance.Session{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		PunchIn:    punchIn,
		Date:       attendance.StartOfDay(punchIn),
		Note:       req.Note,
	}

	// The repository refuses the insert while an open session exists, so two
	// racing punch-ins cannot both succeed.
	created, err := s.SessionRepository.CreateOpen(ctx, session)
	if err != nil {
		return attendance.SessionResponse{}, database.MapError(err)
	}

	return attendance.ToResponse(created), nil
}

// PunchOut implements attendance.SessionService.
func (s *SessionServiceImpl) PunchOut(ctx context.Context, employeeID string) (attendance.SessionResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.SessionResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	closed, err := s.SessionRepository.CloseOpen(ctx, employeeID, s.now().UTC())
	if err != nil {
		return attendance.SessionResponse{}, database.MapError(err)
	}

	return attendance.ToResponse(closed), nil
}

// History implements attendance.SessionService.
func (s *SessionServiceImpl) History(ctx context.Context, req attendance.HistoryRequest) (attendance.ListSessionsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	filter := attendance.HistoryFilter{
		Page:  req.Page,
		Limit: req.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		filter.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		filter.EndDate = &end
	}

	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	sessions, total, err := s.SessionRepository.History(ctx, req.EmployeeID, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list attendance history: %w", database.MapError(err))
	}

	resp := attendance.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Sessions:   make([]attendance.SessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, attendance.ToResponse(session))
	}
	return resp, nil
}
