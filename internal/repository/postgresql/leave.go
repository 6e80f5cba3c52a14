package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) leave.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, employee_id, leave_type, start_date, end_date, total_days, reason, status, reviewer_id, review_date, created_at, updated_at`

func scanRequest(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate, &r.TotalDays,
		&r.Reason, &r.Status, &r.ReviewerID, &r.ReviewDate, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Create implements leave.RequestRepository.
func (l *requestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + requestColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.TotalDays, req.Reason, req.Status,
	))
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.RequestRepository.
func (l *requestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	req, err := scanRequest(q.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Review implements leave.RequestRepository.
//
// The status guard lives in the UPDATE itself: two concurrent reviews can
// both read Pending, but only the first statement finds a Pending row to
// update. The loser is told apart from a missing request with a follow-up
// lookup.
func (l *requestRepository) Review(ctx context.Context, id string, status leave.Status, reviewerID string, reviewDate time.Time) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewer_id = $3, review_date = $4, updated_at = now()
		WHERE id = $1 AND status = 'Pending'
		RETURNING ` + requestColumns

	reviewed, err := scanRequest(q.QueryRow(ctx, query, id, status, reviewerID, reviewDate))
	if err == nil {
		return reviewed, nil
	}
	if err != pgx.ErrNoRows {
		return leave.Request{}, fmt.Errorf("failed to review leave request: %w", err)
	}

	if _, err := l.GetByID(ctx, id); err != nil {
		return leave.Request{}, err
	}
	return leave.Request{}, leave.ErrAlreadyReviewed
}

// List implements leave.RequestRepository.
func (l *requestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, l.db)

	where := `WHERE 1=1`
	var args []interface{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(` AND employee_id = $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		requestColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, total, nil
}

// SumApprovedUnpaidDays implements leave.RequestRepository.
//
// A request's full total_days counts whenever its span touches the period
// at all; spans straddling a period boundary are not clipped.
func (l *requestRepository) SumApprovedUnpaidDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (float64, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0) FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'Approved'
		  AND leave_type = 'Unpaid Leave'
		  AND start_date <= $3
		  AND end_date >= $2
	`

	var sum float64
	if err := q.QueryRow(ctx, query, employeeID, periodStart, periodEnd).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum unpaid leave days: %w", err)
	}
	return sum, nil
}
