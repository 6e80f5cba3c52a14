package payroll

import (
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	PayPeriod  string `json:"pay_period"`
	Force      bool   `json:"force"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidPayPeriod(r.PayPeriod) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period",
			Message: "pay_period must be in YYYY-MM form with a zero-padded month",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	PayPeriod        string  `json:"pay_period"`
	BaseSalary       string  `json:"base_salary"`
	TotalWorkingDays int     `json:"total_working_days"`
	PaidDays         string  `json:"paid_days"`
	GrossEarnings    string  `json:"gross_earnings"`
	UnpaidLeaveDays  string  `json:"unpaid_leave_days"`
	LeaveDeduction   string  `json:"leave_deduction"`
	TaxDeduction     string  `json:"tax_deduction"`
	NetSalary        string  `json:"net_salary"`
	Status           string  `json:"status"`
	PaymentDate      *string `json:"payment_date,omitempty"`
}

type HistoryResponse struct {
	EmployeeID string           `json:"employee_id"`
	Records    []RecordResponse `json:"records"`
}

// ToResponse converts a payroll record to its API shape. Monetary fields
// are rendered as fixed 2-decimal strings so clients never see float noise.
func ToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		PayPeriod:        rec.PayPeriod,
		BaseSalary:       rec.BaseSalary.StringFixed(2),
		TotalWorkingDays: rec.TotalWorkingDays,
		PaidDays:         rec.PaidDays.String(),
		GrossEarnings:    rec.GrossEarnings.StringFixed(2),
		UnpaidLeaveDays:  rec.UnpaidLeaveDays.String(),
		LeaveDeduction:   rec.LeaveDeduction.StringFixed(2),
		TaxDeduction:     rec.TaxDeduction.StringFixed(2),
		NetSalary:        rec.NetSalary.StringFixed(2),
		Status:           string(rec.Status),
	}
	if rec.PaymentDate != nil {
		d := rec.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	return resp
}
