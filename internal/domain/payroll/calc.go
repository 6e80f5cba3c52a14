package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat tax rate applied to gross earnings when no
// rate is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

// CalculationInput carries everything the payroll formula needs. The
// calculation itself is pure: it reads no clock and touches no storage.
type CalculationInput struct {
	BaseSalary      decimal.Decimal
	Year            int
	Month           time.Month
	UnpaidLeaveDays decimal.Decimal
	TaxRate         decimal.Decimal

	// AttendanceDays is the employee's closed-session count for the period.
	// It is carried through for reporting but does not prorate pay: gross
	// earnings are driven purely by the month length and unpaid leave, so an
	// employee with no punches still earns full pay unless unpaid leave was
	// filed. Deliberate compatibility with the system this replaces; see
	// DESIGN.md before "fixing" it.
	AttendanceDays int
}

// Figures is the full monetary breakdown for one pay period. Every amount
// is already rounded to 2 decimal places, half away from zero.
type Figures struct {
	TotalWorkingDays int
	AttendanceDays   int
	DailyRate        decimal.Decimal
	PaidDays         decimal.Decimal
	GrossEarnings    decimal.Decimal
	LeaveDeduction   decimal.Decimal
	TaxDeduction     decimal.Decimal
	NetSalary        decimal.Decimal
}

// Calculate derives the payroll figures for one employee and period:
//
//	dailyRate      = baseSalary / daysInMonth
//	paidDays       = max(0, daysInMonth - unpaidLeaveDays)
//	grossEarnings  = paidDays * dailyRate
//	leaveDeduction = unpaidLeaveDays * dailyRate
//	taxDeduction   = grossEarnings * taxRate
//	netSalary      = grossEarnings - taxDeduction
//
// Paid days are derived from the month length and unpaid leave, not from
// attendance records. ErrInvalidDailyRate is returned when BaseSalary is
// not strictly positive.
func Calculate(in CalculationInput) (Figures, error) {
	if !in.BaseSalary.IsPositive() {
		return Figures{}, ErrInvalidDailyRate
	}

	totalDays := DaysInMonth(in.Year, in.Month)
	daysDec := decimal.NewFromInt(int64(totalDays))
	dailyRate := in.BaseSalary.Div(daysDec)

	paidDays := daysDec.Sub(in.UnpaidLeaveDays)
	if paidDays.IsNegative() {
		paidDays = decimal.Zero
	}

	gross := paidDays.Mul(dailyRate)
	leaveDeduction := in.UnpaidLeaveDays.Mul(dailyRate)
	tax := gross.Mul(in.TaxRate)
	net := gross.Sub(tax)

	return Figures{
		TotalWorkingDays: totalDays,
		AttendanceDays:   in.AttendanceDays,
		DailyRate:        dailyRate.Round(2),
		PaidDays:         paidDays,
		GrossEarnings:    gross.Round(2),
		LeaveDeduction:   leaveDeduction.Round(2),
		TaxDeduction:     tax.Round(2),
		NetSalary:        net.Round(2),
	}, nil
}
