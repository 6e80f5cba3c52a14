package payroll

import (
	"context"
	"time"
)

// RecordRepository defines data access for payroll records. Upsert and
// MarkPaid are conditional single-statement writes so concurrent generation
// or payment of the same record stays consistent.
type RecordRepository interface {
	// Upsert inserts the record, or overwrites the existing record for the
	// same (EmployeeID, PayPeriod) pair when it is not yet Paid. It returns
	// the stored record and whether a new row was created.
	// ErrRecordAlreadyPaid is returned when the existing record is Paid.
	Upsert(ctx context.Context, rec Record) (Record, bool, error)

	GetByID(ctx context.Context, id string) (Record, error)

	GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (Record, error)

	// MarkPaid transitions a Calculated record to Paid, stamping the payment
	// date. It updates only while status is still Calculated; the caller
	// resolves the current status when no row changes.
	MarkPaid(ctx context.Context, id string, paymentDate time.Time) (Record, error)

	// HistoryFor returns all of the employee's records, newest period first.
	HistoryFor(ctx context.Context, employeeID string) ([]Record, error)
}
