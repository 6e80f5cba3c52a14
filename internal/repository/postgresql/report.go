package postgresql

import (
	"context"
	"fmt"

	"github.com/staffloop/hrm-backend-go/internal/domain/report"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) report.SummaryRepository {
	return &summaryRepository{db: db}
}

// GetSummary implements report.SummaryRepository.
func (r *summaryRepository) GetSummary(ctx context.Context) (report.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE status = 'Active'),
			(SELECT COUNT(*) FROM employees WHERE status = 'On Leave'),
			(SELECT COUNT(*) FROM employees WHERE status = 'Terminated'),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM attendance_sessions WHERE punch_out IS NULL),
			(SELECT COUNT(*) FROM payroll_records WHERE status = 'Paid')
	`

	var s report.Summary
	err := q.QueryRow(ctx, query).Scan(
		&s.TotalEmployees, &s.ActiveEmployees, &s.OnLeaveEmployees, &s.TerminatedEmployees,
		&s.PendingLeaveRequests, &s.OpenSessions, &s.PaidPayrollRecords,
	)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to load summary counts: %w", err)
	}

	return s, nil
}
