package leave

import (
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be a supported leave type",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

type ReviewRequest struct {
	LeaveID    string `json:"-"`
	ReviewerID string `json:"-"`
	Action     string `json:"action"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	}
	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reviewer_id",
			Message: "reviewer_id is required",
		})
	}
	if a := ReviewAction(r.Action); a != ActionApprove && a != ActionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be 'approve' or 'reject'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRequest struct {
	EmployeeID *string `json:"employee_id"`
	Status     *string `json:"status"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil {
		switch Status(*r.Status) {
		case StatusPending, StatusApproved, StatusRejected:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be 'Pending', 'Approved' or 'Rejected'",
			})
		}
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalDays  float64 `json:"total_days"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	ReviewerID *string `json:"reviewer_id,omitempty"`
	ReviewDate *string `json:"review_date,omitempty"`
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Requests   []RequestResponse `json:"requests"`
}

// ToResponse converts a leave request entity to its API shape.
func ToResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		LeaveType:  string(req.LeaveType),
		StartDate:  req.StartDate.Format("2006-01-02"),
		EndDate:    req.EndDate.Format("2006-01-02"),
		TotalDays:  req.TotalDays,
		Reason:     req.Reason,
		Status:     string(req.Status),
		ReviewerID: req.ReviewerID,
	}
	if req.ReviewDate != nil {
		d := req.ReviewDate.Format("2006-01-02 15:04:05")
		resp.ReviewDate = &d
	}
	return resp
}
