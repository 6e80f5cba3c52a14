package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCalculated Status = "Calculated"
	StatusPending    Status = "Pending"
	StatusPaid       Status = "Paid"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCalculated, StatusPending, StatusPaid:
		return true
	}
	return false
}

// Record is one employee's payroll for one pay period. At most one record
// exists per (EmployeeID, PayPeriod) pair; regeneration overwrites in place.
// All monetary amounts are rounded to 2 decimal places at calculation time.
type Record struct {
	ID               string
	EmployeeID       string
	PayPeriod        string // canonical YYYY-MM
	BaseSalary       decimal.Decimal
	TotalWorkingDays int
	PaidDays         decimal.Decimal
	GrossEarnings    decimal.Decimal
	UnpaidLeaveDays  decimal.Decimal
	LeaveDeduction   decimal.Decimal
	TaxDeduction     decimal.Decimal
	NetSalary        decimal.Decimal
	Status           Status
	PaymentDate      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
