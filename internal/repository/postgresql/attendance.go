package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `id, employee_id, punch_in, punch_out, duration_minutes, date, note, created_at, updated_at`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PunchIn, &s.PunchOut, &s.DurationMinutes,
		&s.Date, &s.Note, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateOpen implements attendance.SessionRepository.
//
// The insert only proceeds when the employee has no open session, so the
// existence check and the write are a single atomic statement. A partial
// unique index on (employee_id) WHERE punch_out IS NULL backs this up
// against any interleaving the conditional insert itself cannot see.
func (a *sessionRepository) CreateOpen(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_sessions (id, employee_id, punch_in, date, note)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE employee_id = $2 AND punch_out IS NULL
		)
		RETURNING ` + sessionColumns

	created, err := scanSession(q.QueryRow(ctx, query,
		session.ID, session.EmployeeID, session.PunchIn, session.Date, session.Note,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return created, nil
}

// CloseOpen implements attendance.SessionRepository.
func (a *sessionRepository) CloseOpen(ctx context.Context, employeeID string, punchOut time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_sessions
		SET punch_out = $2,
			duration_minutes = GREATEST(0, FLOOR(EXTRACT(EPOCH FROM ($2 - punch_in)) / 60))::int,
			updated_at = now()
		WHERE employee_id = $1 AND punch_out IS NULL
		RETURNING ` + sessionColumns

	closed, err := scanSession(q.QueryRow(ctx, query, employeeID, punchOut))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrNotPunchedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to close session: %w", err)
	}

	return closed, nil
}

// History implements attendance.SessionRepository.
func (a *sessionRepository) History(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := `WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_sessions `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_sessions %s
		ORDER BY punch_in DESC
		LIMIT $%d OFFSET $%d`,
		sessionColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, total, nil
}

// CountClosedInRange implements attendance.SessionRepository.
func (a *sessionRepository) CountClosedInRange(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*) FROM attendance_sessions
		WHERE employee_id = $1
		  AND punch_out IS NOT NULL
		  AND punch_out >= $2
		  AND punch_out < $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count closed sessions: %w", err)
	}
	return count, nil
}
