package payroll

import "errors"

var (
	ErrRecordNotFound    = errors.New("payroll record not found")
	ErrRecordAlreadyPaid = errors.New("payroll record already paid")
	ErrNotCalculated     = errors.New("payroll record has not been calculated")
	ErrNoRecords         = errors.New("no payroll records found")
	ErrInvalidPeriod     = errors.New("invalid pay period")
	ErrInvalidDailyRate  = errors.New("daily rate could not be derived from base salary")
)
