package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/payroll"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) payroll.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `id, employee_id, pay_period, base_salary, total_working_days, paid_days, gross_earnings, unpaid_leave_days, leave_deduction, tax_deduction, net_salary, status, payment_date, created_at, updated_at`

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var r payroll.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.PayPeriod, &r.BaseSalary, &r.TotalWorkingDays,
		&r.PaidDays, &r.GrossEarnings, &r.UnpaidLeaveDays, &r.LeaveDeduction,
		&r.TaxDeduction, &r.NetSalary, &r.Status, &r.PaymentDate,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Upsert implements payroll.RecordRepository.
//
// The UNIQUE (employee_id, pay_period) constraint drives the conflict path,
// and the Paid guard sits inside the DO UPDATE's WHERE clause, so two
// concurrent generates collapse into one row no matter how they interleave.
// xmax = 0 distinguishes a fresh insert from an overwrite.
func (p *recordRepository) Upsert(ctx context.Context, rec payroll.Record) (payroll.Record, bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, pay_period, base_salary, total_working_days, paid_days,
			gross_earnings, unpaid_leave_days, leave_deduction, tax_deduction, net_salary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, pay_period) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			total_working_days = EXCLUDED.total_working_days,
			paid_days = EXCLUDED.paid_days,
			gross_earnings = EXCLUDED.gross_earnings,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			leave_deduction = EXCLUDED.leave_deduction,
			tax_deduction = EXCLUDED.tax_deduction,
			net_salary = EXCLUDED.net_salary,
			status = 'Calculated',
			payment_date = NULL,
			updated_at = now()
		WHERE payroll_records.status <> 'Paid'
		RETURNING ` + recordColumns + `, (xmax = 0) AS is_new`

	var stored payroll.Record
	var isNew bool
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.PayPeriod, rec.BaseSalary, rec.TotalWorkingDays,
		rec.PaidDays, rec.GrossEarnings, rec.UnpaidLeaveDays, rec.LeaveDeduction,
		rec.TaxDeduction, rec.NetSalary, rec.Status,
	).Scan(
		&stored.ID, &stored.EmployeeID, &stored.PayPeriod, &stored.BaseSalary, &stored.TotalWorkingDays,
		&stored.PaidDays, &stored.GrossEarnings, &stored.UnpaidLeaveDays, &stored.LeaveDeduction,
		&stored.TaxDeduction, &stored.NetSalary, &stored.Status, &stored.PaymentDate,
		&stored.CreatedAt, &stored.UpdatedAt, &isNew,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// conflict row exists but the guard blocked the overwrite
			return payroll.Record{}, false, payroll.ErrRecordAlreadyPaid
		}
		return payroll.Record{}, false, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return stored, isNew, nil
}

// GetByID implements payroll.RecordRepository.
func (p *recordRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	rec, err := scanRecord(q.QueryRow(ctx, `SELECT `+recordColumns+` FROM payroll_records WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndPeriod implements payroll.RecordRepository.
func (p *recordRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + recordColumns + ` FROM payroll_records WHERE employee_id = $1 AND pay_period = $2`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// MarkPaid implements payroll.RecordRepository.
func (p *recordRepository) MarkPaid(ctx context.Context, id string, paymentDate time.Time) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records
		SET status = 'Paid', payment_date = $2, updated_at = now()
		WHERE id = $1 AND status = 'Calculated'
		RETURNING ` + recordColumns

	paid, err := scanRecord(q.QueryRow(ctx, query, id, paymentDate))
	if err == nil {
		return paid, nil
	}
	if err != pgx.ErrNoRows {
		return payroll.Record{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	// Nothing matched: either the record is missing or it is not in the
	// Calculated state. GetByID reports which.
	if _, err := p.GetByID(ctx, id); err != nil {
		return payroll.Record{}, err
	}
	return payroll.Record{}, payroll.ErrNotCalculated
}

// HistoryFor implements payroll.RecordRepository.
func (p *recordRepository) HistoryFor(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + recordColumns + ` FROM payroll_records
		WHERE employee_id = $1
		ORDER BY pay_period DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll records: %w", err)
	}

	return records, nil
}
