package leave

import (
	"errors"
	"time"
)

// ErrInvalidDateRange is returned when the inclusive day count would be
// non-positive.
var ErrInvalidDateRange = errors.New("end date must not be before start date")

// TotalDaysBetween returns the inclusive calendar day count between start
// and end: floor(days(end-start)) + 1. Both dates are normalized to midnight
// first so times of day cannot skew the count. All calendar days count;
// weekends and holidays are not excluded.
func TotalDaysBetween(start, end time.Time) (float64, error) {
	start = midnight(start)
	end = midnight(end)
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	days := float64(int(end.Sub(start).Hours()/24)) + 1
	return days, nil
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
