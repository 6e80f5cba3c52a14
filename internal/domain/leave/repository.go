package leave

import (
	"context"
	"time"
)

// RequestRepository defines data access for leave requests. Review is a
// conditional single-document update so two concurrent reviews of the same
// request can never both succeed.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// Review transitions the request out of Pending, recording reviewer and
	// review time. It updates only while status is still Pending and
	// returns ErrAlreadyReviewed when the request was already decided.
	Review(ctx context.Context, id string, status Status, reviewerID string, reviewDate time.Time) (Request, error)

	// List returns requests newest first.
	List(ctx context.Context, filter Filter) ([]Request, int64, error)

	// SumApprovedUnpaidDays sums TotalDays over Approved Unpaid-type
	// requests whose [StartDate, EndDate] overlaps [periodStart, periodEnd]
	// (overlap test: startDate <= periodEnd AND endDate >= periodStart).
	// A request's full TotalDays counts even when only part of its span
	// falls inside the period; the source system never clipped to period
	// boundaries and payroll preserves that behavior.
	SumApprovedUnpaidDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (float64, error)
}

// Filter enumerates the supported leave list predicates.
type Filter struct {
	EmployeeID *string
	Status     *Status
	Page       int
	Limit      int
}
