package leave

import "time"

type Type string

const (
	TypeSick      Type = "Sick Leave"
	TypeCasual    Type = "Casual Leave"
	TypeAnnual    Type = "Annual Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
	TypeUnpaid    Type = "Unpaid Leave"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is one employee's request for a contiguous leave span, dates
// inclusive. TotalDays is always derived from the dates before persistence;
// it is never accepted from the caller.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  float64
	Reason     string
	Status     Status
	ReviewerID *string
	ReviewDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
