package attendance

import "context"

// SessionService defines the attendance session operations.
type SessionService interface {
	// PunchIn opens a new session for today. Fails when the employee
	// already has an open session.
	PunchIn(ctx context.Context, req PunchInRequest) (SessionResponse, error)

	// PunchOut closes the employee's open session and computes its
	// duration.
	PunchOut(ctx context.Context, employeeID string) (SessionResponse, error)

	// History lists the employee's sessions newest punch-in first.
	History(ctx context.Context, req HistoryRequest) (ListSessionsResponse, error)
}
