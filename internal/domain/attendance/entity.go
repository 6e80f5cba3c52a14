package attendance

import (
	"time"
)

// Session is one work interval for one employee on one calendar day. A
// session with no PunchOut yet is "open"; an employee can have at most one
// open session at a time.
type Session struct {
	ID              string
	EmployeeID      string
	PunchIn         time.Time
	PunchOut        *time.Time
	DurationMinutes int
	Date            time.Time
	Note            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Session) Open() bool {
	return s.PunchOut == nil
}

// DurationMinutesBetween computes the closed-session duration:
// floor of the elapsed minutes, never negative.
func DurationMinutesBetween(punchIn, punchOut time.Time) int {
	mins := int(punchOut.Sub(punchIn).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// StartOfDay truncates t to midnight UTC; session dates are stored this way
// so range filters group whole calendar days.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
