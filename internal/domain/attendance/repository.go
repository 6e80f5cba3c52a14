package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions. The two
// write methods are conditional single-document operations: the open-session
// invariant is enforced by the write itself, never by a separate
// check-then-act sequence.
type SessionRepository interface {
	// CreateOpen inserts a new open session for the employee only if none
	// exists. Returns ErrAlreadyPunchedIn when an open session is present.
	CreateOpen(ctx context.Context, session Session) (Session, error)

	// CloseOpen closes the employee's open session at punchOut, computing
	// the duration atomically. Returns ErrNotPunchedIn when no open session
	// exists.
	CloseOpen(ctx context.Context, employeeID string, punchOut time.Time) (Session, error)

	// History lists sessions newest punch-in first. Range filtering matches
	// the session's Date column, so an open session matches the day it
	// started.
	History(ctx context.Context, employeeID string, filter HistoryFilter) ([]Session, int64, error)

	// CountClosedInRange counts sessions whose punch-out falls within
	// [start, end). Feeds payroll's attendance figure.
	CountClosedInRange(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}

// HistoryFilter enumerates the supported history predicates.
type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}
