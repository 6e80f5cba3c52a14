package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2025-03", FormatPeriod(2025, time.March))
	assert.Equal(t, "2025-12", FormatPeriod(2025, time.December))
	assert.Equal(t, "0999-01", FormatPeriod(999, time.January))
}

func TestParsePeriod(t *testing.T) {
	year, month, err := ParsePeriod("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.March, month)

	for _, bad := range []string{"2025-3", "2025-13", "2025-00", "202503", "march 2025", ""} {
		_, _, err := ParsePeriod(bad)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "period %q", bad)
	}
}

func TestPeriodBounds(t *testing.T) {
	start, end := PeriodBounds(2024, time.February)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = PeriodBounds(2024, time.December)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.March))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
}

func TestPeriodEnd(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), PeriodEnd(2024, time.February))
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), PeriodEnd(2025, time.December))
}
