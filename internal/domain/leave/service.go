package leave

import (
	"context"
	"time"
)

// LedgerService manages the leave request lifecycle: submission, one-shot
// review, listing, and the unpaid-day aggregation payroll depends on.
type LedgerService interface {
	// Submit records a new Pending leave request. The inclusive day count is
	// computed from the dates; a caller-supplied count is ignored.
	Submit(ctx context.Context, req *SubmitRequest) (RequestResponse, error)

	// Review approves or rejects a Pending request. Exactly one review of a
	// given request can ever succeed.
	Review(ctx context.Context, req *ReviewRequest) (RequestResponse, error)

	List(ctx context.Context, req *ListRequest) (ListRequestsResponse, error)

	// ApprovedUnpaidDaysInPeriod sums the approved unpaid leave days that
	// overlap the given period.
	ApprovedUnpaidDaysInPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (float64, error)
}
