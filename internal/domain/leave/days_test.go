package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"three day span", date(2024, time.March, 1), date(2024, time.March, 3), 3},
		{"single day", date(2024, time.March, 1), date(2024, time.March, 1), 1},
		{"across month boundary", date(2024, time.January, 30), date(2024, time.February, 2), 4},
		{"leap february", date(2024, time.February, 28), date(2024, time.March, 1), 3},
		{"full month", date(2024, time.March, 1), date(2024, time.March, 31), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalDaysBetween(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 3, 0, 15, 0, 0, time.UTC)

	got, err := TotalDaysBetween(start, end)
	require.NoError(t, err)
	assert.Equal(t, float64(3), got)
}

func TestTotalDaysBetween_EndBeforeStart(t *testing.T) {
	_, err := TotalDaysBetween(date(2024, time.March, 3), date(2024, time.March, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
