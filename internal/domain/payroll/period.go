package payroll

import (
	"fmt"
	"time"

	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

// FormatPeriod renders a pay period in canonical YYYY-MM form with a
// zero-padded month.
func FormatPeriod(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParsePeriod validates and splits a canonical YYYY-MM pay period.
// "2025-3" and "2025-13" are rejected.
func ParsePeriod(period string) (int, time.Month, error) {
	if !validator.IsValidPayPeriod(period) {
		return 0, 0, ErrInvalidPeriod
	}
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, ErrInvalidPeriod
	}
	return t.Year(), t.Month(), nil
}

// PeriodBounds returns the half-open calendar span [start, nextMonthStart)
// of the period, in UTC.
func PeriodBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the calendar day count of the month, leap years
// included.
func DaysInMonth(year int, month time.Month) int {
	start, end := PeriodBounds(year, month)
	return int(end.Sub(start).Hours() / 24)
}

// PeriodEnd returns the last calendar day of the period at midnight UTC,
// the inclusive upper bound used by the leave overlap query.
func PeriodEnd(year int, month time.Month) time.Time {
	_, next := PeriodBounds(year, month)
	return next.AddDate(0, 0, -1)
}
