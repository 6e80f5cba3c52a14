package payroll

import "context"

// RecordService generates, pays out, and reads payroll records. One record
// exists per employee per pay period.
type RecordService interface {
	// Generate calculates and stores the record for the employee and period.
	// When a record already exists it is returned unchanged unless Force is
	// set, in which case it is recalculated and overwritten in place.
	// Forcing regeneration of a Paid record yields ErrRecordAlreadyPaid.
	// The returned flag reports whether a new record was created.
	Generate(ctx context.Context, req *GenerateRequest) (RecordResponse, bool, error)

	// MarkPaid settles a Calculated record. Marking an already-Paid record
	// is a no-op that returns the record as stored; a Pending record cannot
	// be paid.
	MarkPaid(ctx context.Context, payrollID string) (RecordResponse, error)

	GetRecord(ctx context.Context, employeeID, period string) (RecordResponse, error)

	// History returns the employee's records newest period first, or
	// ErrNoRecords when the employee has none.
	History(ctx context.Context, employeeID string) (HistoryResponse, error)
}
