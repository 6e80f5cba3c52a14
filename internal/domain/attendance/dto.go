package attendance

import (
	"fmt"

	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type PunchInRequest struct {
	EmployeeID string  `json:"-"`
	Note       *string `json:"note,omitempty"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryRequest struct {
	EmployeeID string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	PunchIn         string  `json:"punch_in"`
	PunchOut        *string `json:"punch_out,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationHours   string  `json:"duration_hours"`
	Note            *string `json:"note,omitempty"`
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Sessions   []SessionResponse `json:"sessions"`
}

// ToResponse converts a session entity to its API shape.
func ToResponse(s Session) SessionResponse {
	resp := SessionResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		Date:            s.Date.Format("2006-01-02"),
		PunchIn:         s.PunchIn.Format("2006-01-02 15:04:05"),
		DurationMinutes: s.DurationMinutes,
		DurationHours:   fmt.Sprintf("%.2f", float64(s.DurationMinutes)/60.0),
		Note:            s.Note,
	}
	if s.PunchOut != nil {
		out := s.PunchOut.Format("2006-01-02 15:04:05")
		resp.PunchOut = &out
	}
	return resp
}
