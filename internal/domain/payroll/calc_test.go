package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	got, err := Calculate(CalculationInput{
		BaseSalary:      decimal.NewFromInt(3100),
		Year:            2024,
		Month:           time.March,
		UnpaidLeaveDays: decimal.NewFromInt(2),
		TaxRate:         DefaultTaxRate,
	})
	require.NoError(t, err)

	assert.Equal(t, 31, got.TotalWorkingDays)
	assert.Equal(t, "100.00", got.DailyRate.StringFixed(2))
	assert.Equal(t, "29", got.PaidDays.String())
	assert.Equal(t, "2900.00", got.GrossEarnings.StringFixed(2))
	assert.Equal(t, "200.00", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "290.00", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "2610.00", got.NetSalary.StringFixed(2))
}

func TestCalculate_NoUnpaidLeave(t *testing.T) {
	got, err := Calculate(CalculationInput{
		BaseSalary: decimal.NewFromInt(2800),
		Year:       2023,
		Month:      time.February,
		TaxRate:    DefaultTaxRate,
	})
	require.NoError(t, err)

	assert.Equal(t, 28, got.TotalWorkingDays)
	assert.Equal(t, "2800.00", got.GrossEarnings.StringFixed(2))
	assert.Equal(t, "0.00", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "280.00", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "2520.00", got.NetSalary.StringFixed(2))
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	// 1000 / 30 = 33.333..., 29 paid days -> 966.666... gross
	got, err := Calculate(CalculationInput{
		BaseSalary:      decimal.NewFromInt(1000),
		Year:            2024,
		Month:           time.April,
		UnpaidLeaveDays: decimal.NewFromInt(1),
		TaxRate:         DefaultTaxRate,
	})
	require.NoError(t, err)

	assert.Equal(t, "966.67", got.GrossEarnings.StringFixed(2))
	assert.Equal(t, "33.33", got.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "96.67", got.TaxDeduction.StringFixed(2))
	assert.Equal(t, "870.00", got.NetSalary.StringFixed(2))
}

func TestCalculate_UnpaidExceedsMonth(t *testing.T) {
	got, err := Calculate(CalculationInput{
		BaseSalary:      decimal.NewFromInt(3100),
		Year:            2024,
		Month:           time.March,
		UnpaidLeaveDays: decimal.NewFromInt(40),
		TaxRate:         DefaultTaxRate,
	})
	require.NoError(t, err)

	assert.True(t, got.PaidDays.IsZero())
	assert.Equal(t, "0.00", got.GrossEarnings.StringFixed(2))
	assert.Equal(t, "0.00", got.NetSalary.StringFixed(2))
}

func TestCalculate_InvalidBaseSalary(t *testing.T) {
	for _, base := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		_, err := Calculate(CalculationInput{
			BaseSalary: base,
			Year:       2024,
			Month:      time.March,
			TaxRate:    DefaultTaxRate,
		})
		assert.ErrorIs(t, err, ErrInvalidDailyRate)
	}
}
