package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	FirstName    string
	LastName     string
	PhoneNumber  *string
	Department   string
	Designation  string
	JoiningDate  time.Time
	BaseSalary   decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	Email *string
}
